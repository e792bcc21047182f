package report

// IndividualMetricsSummary holds the finished counters of one benchmark actor.
type IndividualMetricsSummary struct {
	ActorKind ActorKind `json:"actor_kind" yaml:"actor_kind"`
	ActorID   uint32    `json:"actor_id" yaml:"actor_id"`

	TotalMessages      uint64 `json:"total_messages" yaml:"total_messages"`
	TotalUserDataBytes uint64 `json:"total_user_data_bytes" yaml:"total_user_data_bytes"` // payload only
	TotalBytes         uint64 `json:"total_bytes" yaml:"total_bytes"`                     // payload plus protocol overhead

	// TotalMessageBatches is 0 when the actor finished before a full batch
	// or when batches were not tracked.
	TotalMessageBatches uint64 `json:"total_message_batches" yaml:"total_message_batches"`
}

// IndividualMetrics is the per-actor record of a report. Only Summary takes
// part in aggregation; the series are carried for consumers of the document.
type IndividualMetrics struct {
	Summary         IndividualMetricsSummary `json:"summary" yaml:"summary"`
	ThroughputMBTS  *TimeSeries              `json:"throughput_mb_ts,omitempty" yaml:"throughput_mb_ts,omitempty"`
	ThroughputMsgTS *TimeSeries              `json:"throughput_msg_ts,omitempty" yaml:"throughput_msg_ts,omitempty"`
	LatencyTS       *TimeSeries              `json:"latency_ts,omitempty" yaml:"latency_ts,omitempty"`
}
