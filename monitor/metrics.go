package monitor

import (
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// latencyWindow 只保留最近的请求延迟用于计算百分位
const latencyWindow = 1000

type Snapshot struct {
	RequestCount   int64   `json:"request_count"`
	Concurrent     int64   `json:"concurrent"`
	MaxConcurrent  int64   `json:"max_concurrent"`
	ExplicitErrors int64   `json:"explicit_errors"` // 4xx
	ImplicitErrors int64   `json:"implicit_errors"` // 5xx
	Fallbacks      int64   `json:"fallbacks"`
	LatencyAvgMs   float64 `json:"latency_avg_ms"`
	LatencyP50Ms   float64 `json:"latency_p50_ms"`
	LatencyP95Ms   float64 `json:"latency_p95_ms"`
	LatencyMaxMs   float64 `json:"latency_max_ms"`
	GoroutineCount int     `json:"goroutine_count"`
	MemoryAllocMB  uint64  `json:"memory_alloc_mb"`
}

type recorder struct {
	requestCount   atomic.Int64
	concurrent     atomic.Int64
	maxConcurrent  atomic.Int64
	explicitErrors atomic.Int64
	implicitErrors atomic.Int64
	fallbacks      atomic.Int64

	mutex     sync.Mutex
	latencies []float64
	next      int
}

var global = &recorder{}

// RecordRequest 记录单个请求的延迟和状态码
func RecordRequest(latency time.Duration, statusCode int) {
	global.requestCount.Add(1)
	switch {
	case statusCode >= 500:
		global.implicitErrors.Add(1)
	case statusCode >= 400:
		global.explicitErrors.Add(1)
	}

	global.mutex.Lock()
	defer global.mutex.Unlock()
	latencyMs := float64(latency.Milliseconds())
	if len(global.latencies) < latencyWindow {
		global.latencies = append(global.latencies, latencyMs)
		return
	}
	global.latencies[global.next] = latencyMs
	global.next = (global.next + 1) % latencyWindow
}

func IncrementConcurrent() {
	current := global.concurrent.Add(1)
	for {
		max := global.maxConcurrent.Load()
		if current <= max || global.maxConcurrent.CompareAndSwap(max, current) {
			return
		}
	}
}

func DecrementConcurrent() {
	global.concurrent.Add(-1)
}

// RecordFallback counts restoration requests that had to use the fallback model.
func RecordFallback() {
	global.fallbacks.Add(1)
}

func GetSnapshot() Snapshot {
	global.mutex.Lock()
	sorted := make([]float64, len(global.latencies))
	copy(sorted, global.latencies)
	global.mutex.Unlock()
	sort.Float64s(sorted)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	snapshot := Snapshot{
		RequestCount:   global.requestCount.Load(),
		Concurrent:     global.concurrent.Load(),
		MaxConcurrent:  global.maxConcurrent.Load(),
		ExplicitErrors: global.explicitErrors.Load(),
		ImplicitErrors: global.implicitErrors.Load(),
		Fallbacks:      global.fallbacks.Load(),
		LatencyAvgMs:   calculateAverage(sorted),
		LatencyP50Ms:   calculatePercentile(sorted, 0.50),
		LatencyP95Ms:   calculatePercentile(sorted, 0.95),
		GoroutineCount: runtime.NumGoroutine(),
		MemoryAllocMB:  m.Alloc / 1024 / 1024,
	}
	if len(sorted) > 0 {
		snapshot.LatencyMaxMs = sorted[len(sorted)-1]
	}
	return snapshot
}

// Reset clears all counters.
func Reset() {
	global.mutex.Lock()
	defer global.mutex.Unlock()
	global.requestCount.Store(0)
	global.concurrent.Store(0)
	global.maxConcurrent.Store(0)
	global.explicitErrors.Store(0)
	global.implicitErrors.Store(0)
	global.fallbacks.Store(0)
	global.latencies = nil
	global.next = 0
}

func calculateAverage(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func calculatePercentile(sortedValues []float64, percentile float64) float64 {
	if len(sortedValues) == 0 {
		return 0
	}
	index := int(float64(len(sortedValues)) * percentile)
	if index >= len(sortedValues) {
		index = len(sortedValues) - 1
	}
	return sortedValues[index]
}
