package metrics

import (
	"testing"
	"time"

	"github.com/park285/arabic-sarf-go/internal/llm"
)

func TestStoreRecordsMetrics(t *testing.T) {
	store := NewStore()
	store.RecordSuccess(120*time.Millisecond, llm.Usage{InputTokens: 2, OutputTokens: 3, ReasoningTokens: 1})
	store.RecordError(50 * time.Millisecond)
	store.RecordTimeout(30 * time.Second)

	usage := store.UsageTotals()
	if usage.InputTokens != 2 || usage.OutputTokens != 3 || usage.ReasoningTokens != 1 {
		t.Fatalf("unexpected usage totals: %+v", usage)
	}

	snapshot := store.Snapshot()
	if snapshot["total_calls"] != 3 {
		t.Fatalf("expected total_calls 3, got %v", snapshot["total_calls"])
	}
	if snapshot["total_errors"] != 2 {
		t.Fatalf("expected total_errors 2, got %v", snapshot["total_errors"])
	}
	if snapshot["total_timeouts"] != 1 {
		t.Fatalf("expected total_timeouts 1, got %v", snapshot["total_timeouts"])
	}
}

func TestStoreAccumulatesUsage(t *testing.T) {
	store := NewStore()
	store.RecordSuccess(time.Millisecond, llm.Usage{InputTokens: 6, OutputTokens: 2, TotalTokens: 8, CachedTokens: 2})
	store.RecordSuccess(time.Millisecond, llm.Usage{InputTokens: 4, OutputTokens: 1, TotalTokens: 5, CachedTokens: 3})

	usage := store.UsageTotals()
	if usage.InputTokens != 10 || usage.TotalTokens != 13 || usage.CachedTokens != 5 {
		t.Fatalf("unexpected usage totals: %+v", usage)
	}

	snapshot := store.Snapshot()
	if snapshot["cache_hit_ratio"] != 0.5 {
		t.Fatalf("expected cache_hit_ratio 0.5, got %v", snapshot["cache_hit_ratio"])
	}
	if snapshot["total_cached_tokens"] != 5 {
		t.Fatalf("expected total_cached_tokens 5, got %v", snapshot["total_cached_tokens"])
	}
}

func TestStoreRecordsTasrif(t *testing.T) {
	store := NewStore()
	store.RecordTasrif("isim")
	store.RecordTasrif("isim")
	store.RecordTasrif("lughowiy")

	if got := store.Snapshot()["total_tasrif"]; got != 3 {
		t.Fatalf("expected total_tasrif 3, got %v", got)
	}
	if counts := store.tasrifCounts(); counts["isim"] != 2 || counts["lughowiy"] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func TestRegistryGathersStore(t *testing.T) {
	store := NewStore()
	store.RecordSuccess(time.Second, llm.Usage{})
	store.RecordTasrif("istilahi")

	registry, err := NewRegistry(store)
	if err != nil {
		t.Fatalf("new registry failed: %v", err)
	}
	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}

	found := make(map[string]bool)
	for _, family := range families {
		found[family.GetName()] = true
	}
	for _, name := range []string{"sarf_gemini_calls_total", "sarf_tasrif_generated_total", "sarf_gemini_tokens_total", "sarf_gemini_cache_hit_ratio"} {
		if !found[name] {
			t.Fatalf("expected metric %s", name)
		}
	}
}
