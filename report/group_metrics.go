package report

import "math"

// BenchmarkGroupMetricsSummary holds pre-aggregated statistics of one group.
// Throughput is in MB/s and messages/s, latencies in milliseconds.
type BenchmarkGroupMetricsSummary struct {
	Kind GroupMetricsKind `json:"kind" yaml:"kind"`

	TotalThroughputMegabytesPerSecond   float64 `json:"total_throughput_megabytes_per_second" yaml:"total_throughput_megabytes_per_second"`
	TotalThroughputMessagesPerSecond    float64 `json:"total_throughput_messages_per_second" yaml:"total_throughput_messages_per_second"`
	AverageThroughputMegabytesPerSecond float64 `json:"average_throughput_megabytes_per_second" yaml:"average_throughput_megabytes_per_second"`
	AverageThroughputMessagesPerSecond  float64 `json:"average_throughput_messages_per_second" yaml:"average_throughput_messages_per_second"`

	AverageP50LatencyMs    float64 `json:"average_p50_latency_ms" yaml:"average_p50_latency_ms"`
	AverageP90LatencyMs    float64 `json:"average_p90_latency_ms" yaml:"average_p90_latency_ms"`
	AverageP95LatencyMs    float64 `json:"average_p95_latency_ms" yaml:"average_p95_latency_ms"`
	AverageP99LatencyMs    float64 `json:"average_p99_latency_ms" yaml:"average_p99_latency_ms"`
	AverageP999LatencyMs   float64 `json:"average_p999_latency_ms" yaml:"average_p999_latency_ms"`
	AverageP9999LatencyMs  float64 `json:"average_p9999_latency_ms" yaml:"average_p9999_latency_ms"`
	AverageLatencyMs       float64 `json:"average_latency_ms" yaml:"average_latency_ms"`
	AverageMedianLatencyMs float64 `json:"average_median_latency_ms" yaml:"average_median_latency_ms"`
	MinLatencyMs           float64 `json:"min_latency_ms" yaml:"min_latency_ms"`
	MaxLatencyMs           float64 `json:"max_latency_ms" yaml:"max_latency_ms"`
	StdDevLatencyMs        float64 `json:"std_dev_latency_ms" yaml:"std_dev_latency_ms"`
}

// statistics lists every numeric field by name, in summary line order.
func (s *BenchmarkGroupMetricsSummary) statistics() []namedValue {
	return []namedValue{
		{"total_throughput_megabytes_per_second", s.TotalThroughputMegabytesPerSecond},
		{"total_throughput_messages_per_second", s.TotalThroughputMessagesPerSecond},
		{"average_throughput_megabytes_per_second", s.AverageThroughputMegabytesPerSecond},
		{"average_throughput_messages_per_second", s.AverageThroughputMessagesPerSecond},
		{"average_p50_latency_ms", s.AverageP50LatencyMs},
		{"average_p90_latency_ms", s.AverageP90LatencyMs},
		{"average_p95_latency_ms", s.AverageP95LatencyMs},
		{"average_p99_latency_ms", s.AverageP99LatencyMs},
		{"average_p999_latency_ms", s.AverageP999LatencyMs},
		{"average_p9999_latency_ms", s.AverageP9999LatencyMs},
		{"average_latency_ms", s.AverageLatencyMs},
		{"average_median_latency_ms", s.AverageMedianLatencyMs},
		{"min_latency_ms", s.MinLatencyMs},
		{"max_latency_ms", s.MaxLatencyMs},
		{"std_dev_latency_ms", s.StdDevLatencyMs},
	}
}

type namedValue struct {
	name  string
	value float64
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// BenchmarkGroupMetrics wraps a group's statistics and its time series.
// AvgThroughputMBTS must hold at least one point; its last point is the
// group's total elapsed time.
type BenchmarkGroupMetrics struct {
	Summary            BenchmarkGroupMetricsSummary `json:"summary" yaml:"summary"`
	AvgThroughputMBTS  TimeSeries                   `json:"avg_throughput_mb_ts" yaml:"avg_throughput_mb_ts"`
	AvgThroughputMsgTS *TimeSeries                  `json:"avg_throughput_msg_ts,omitempty" yaml:"avg_throughput_msg_ts,omitempty"`
	AvgLatencyTS       *TimeSeries                  `json:"avg_latency_ts,omitempty" yaml:"avg_latency_ts,omitempty"`
}

// TotalTestTime returns the time of the last throughput sample in seconds.
// Returns ErrEmptyTimeSeries when the series has no points.
func (g *BenchmarkGroupMetrics) TotalTestTime() (float64, error) {
	last, ok := g.AvgThroughputMBTS.Last()
	if !ok {
		return 0, ErrEmptyTimeSeries
	}
	return last.TimeS, nil
}
