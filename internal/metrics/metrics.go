package metrics

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/park285/arabic-sarf-go/internal/llm"
)

const namespace = "sarf"

var (
	geminiCallsDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "gemini", "calls_total"),
		"Gemini generateContent 호출 수",
		nil, nil,
	)
	geminiErrorsDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "gemini", "errors_total"),
		"실패한 Gemini 호출 수",
		nil, nil,
	)
	geminiTimeoutsDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "gemini", "timeouts_total"),
		"제한 시간을 넘긴 Gemini 호출 수",
		nil, nil,
	)
	geminiTokensDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "gemini", "tokens_total"),
		"누적 토큰 수",
		[]string{"kind"}, nil,
	)
	geminiCacheHitDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "gemini", "cache_hit_ratio"),
		"입력 토큰 대비 암시적 캐시 토큰 비율",
		nil, nil,
	)
	geminiDurationDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "gemini", "duration_seconds_total"),
		"Gemini 호출 누적 소요 시간",
		nil, nil,
	)
	tasrifDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "tasrif", "generated_total"),
		"모드별 타스리프 생성 수",
		[]string{"mode"}, nil,
	)
)

// Store 는 Gemini 호출과 타스리프 생성 통계를 저장한다.
// prometheus.Collector 를 구현한다.
type Store struct {
	totalCalls      int64
	totalErrors     int64
	totalTimeouts   int64
	totalDurationMs int64

	usageMu sync.Mutex
	usage   llm.Usage

	tasrifMu     sync.Mutex
	tasrifByMode map[string]int64
}

var _ prometheus.Collector = (*Store)(nil)

// NewStore 는 통계 저장소를 생성한다.
func NewStore() *Store {
	return &Store{tasrifByMode: make(map[string]int64)}
}

// RecordSuccess 는 성공 호출 통계를 기록한다.
func (s *Store) RecordSuccess(duration time.Duration, usage llm.Usage) {
	atomic.AddInt64(&s.totalCalls, 1)
	atomic.AddInt64(&s.totalDurationMs, duration.Milliseconds())

	s.usageMu.Lock()
	s.usage = s.usage.Add(usage)
	s.usageMu.Unlock()
}

// RecordError 는 실패 호출 통계를 기록한다.
func (s *Store) RecordError(duration time.Duration) {
	atomic.AddInt64(&s.totalCalls, 1)
	atomic.AddInt64(&s.totalErrors, 1)
	atomic.AddInt64(&s.totalDurationMs, duration.Milliseconds())
}

// RecordTimeout 는 제한 시간 초과 호출을 기록한다. 오류로도 집계된다.
func (s *Store) RecordTimeout(duration time.Duration) {
	atomic.AddInt64(&s.totalTimeouts, 1)
	s.RecordError(duration)
}

// RecordTasrif 는 모드별 생성 횟수를 기록한다.
func (s *Store) RecordTasrif(mode string) {
	s.tasrifMu.Lock()
	defer s.tasrifMu.Unlock()
	s.tasrifByMode[mode]++
}

// UsageTotals 는 누적 사용량을 반환한다.
func (s *Store) UsageTotals() llm.Usage {
	s.usageMu.Lock()
	defer s.usageMu.Unlock()
	return s.usage
}

// Snapshot 는 통계 스냅샷을 반환한다.
func (s *Store) Snapshot() map[string]float64 {
	totalCalls := atomic.LoadInt64(&s.totalCalls)
	totalErrors := atomic.LoadInt64(&s.totalErrors)
	durationMs := atomic.LoadInt64(&s.totalDurationMs)
	usage := s.UsageTotals()

	avgDuration := 0.0
	if totalCalls > 0 {
		avgDuration = float64(durationMs) / float64(totalCalls)
	}

	return map[string]float64{
		"total_calls":            float64(totalCalls),
		"total_errors":           float64(totalErrors),
		"total_timeouts":         float64(atomic.LoadInt64(&s.totalTimeouts)),
		"total_input_tokens":     float64(usage.InputTokens),
		"total_output_tokens":    float64(usage.OutputTokens),
		"total_reasoning_tokens": float64(usage.ReasoningTokens),
		"total_cached_tokens":    float64(usage.CachedTokens),
		"total_tokens":           float64(usage.TotalTokens),
		"cache_hit_ratio":        usage.CacheHitRatio(),
		"total_duration_ms":      float64(durationMs),
		"avg_duration_ms":        avgDuration,
		"total_tasrif":           float64(s.tasrifTotal()),
	}
}

func (s *Store) tasrifTotal() int64 {
	s.tasrifMu.Lock()
	defer s.tasrifMu.Unlock()
	var total int64
	for _, count := range s.tasrifByMode {
		total += count
	}
	return total
}

func (s *Store) tasrifCounts() map[string]int64 {
	s.tasrifMu.Lock()
	defer s.tasrifMu.Unlock()
	counts := make(map[string]int64, len(s.tasrifByMode))
	for mode, count := range s.tasrifByMode {
		counts[mode] = count
	}
	return counts
}

// Describe 는 prometheus.Collector 구현이다.
func (s *Store) Describe(ch chan<- *prometheus.Desc) {
	ch <- geminiCallsDesc
	ch <- geminiErrorsDesc
	ch <- geminiTimeoutsDesc
	ch <- geminiTokensDesc
	ch <- geminiCacheHitDesc
	ch <- geminiDurationDesc
	ch <- tasrifDesc
}

// Collect 는 현재 누적값을 상수 메트릭으로 내보낸다.
func (s *Store) Collect(ch chan<- prometheus.Metric) {
	usage := s.UsageTotals()
	ch <- prometheus.MustNewConstMetric(geminiCallsDesc, prometheus.CounterValue, float64(atomic.LoadInt64(&s.totalCalls)))
	ch <- prometheus.MustNewConstMetric(geminiErrorsDesc, prometheus.CounterValue, float64(atomic.LoadInt64(&s.totalErrors)))
	ch <- prometheus.MustNewConstMetric(geminiTimeoutsDesc, prometheus.CounterValue, float64(atomic.LoadInt64(&s.totalTimeouts)))
	ch <- prometheus.MustNewConstMetric(geminiTokensDesc, prometheus.CounterValue, float64(usage.InputTokens), "input")
	ch <- prometheus.MustNewConstMetric(geminiTokensDesc, prometheus.CounterValue, float64(usage.OutputTokens), "output")
	ch <- prometheus.MustNewConstMetric(geminiTokensDesc, prometheus.CounterValue, float64(usage.ReasoningTokens), "reasoning")
	ch <- prometheus.MustNewConstMetric(geminiTokensDesc, prometheus.CounterValue, float64(usage.CachedTokens), "cached")
	ch <- prometheus.MustNewConstMetric(geminiCacheHitDesc, prometheus.GaugeValue, usage.CacheHitRatio())
	ch <- prometheus.MustNewConstMetric(geminiDurationDesc, prometheus.CounterValue, float64(atomic.LoadInt64(&s.totalDurationMs))/1000)
	for mode, count := range s.tasrifCounts() {
		ch <- prometheus.MustNewConstMetric(tasrifDesc, prometheus.CounterValue, float64(count), mode)
	}
}

// NewRegistry 는 store 와 Go 런타임 수집기를 등록한 레지스트리를 만든다.
func NewRegistry(store *Store) (*prometheus.Registry, error) {
	registry := prometheus.NewRegistry()
	if err := registry.Register(store); err != nil {
		return nil, err
	}
	if err := registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, err
	}
	return registry, nil
}
