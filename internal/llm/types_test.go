package llm

import "testing"

func TestUsageAdd(t *testing.T) {
	total := Usage{InputTokens: 1, OutputTokens: 2, TotalTokens: 3}.Add(Usage{InputTokens: 4, OutputTokens: 5, TotalTokens: 9, CachedTokens: 2})
	if total.InputTokens != 5 || total.OutputTokens != 7 || total.TotalTokens != 12 || total.CachedTokens != 2 {
		t.Fatalf("unexpected sum: %+v", total)
	}
}

func TestUsageCacheHitRatio(t *testing.T) {
	if ratio := (Usage{}).CacheHitRatio(); ratio != 0 {
		t.Fatalf("expected 0 for empty usage, got %v", ratio)
	}
	if ratio := (Usage{InputTokens: 10, CachedTokens: 5}).CacheHitRatio(); ratio != 0.5 {
		t.Fatalf("expected 0.5, got %v", ratio)
	}
}
