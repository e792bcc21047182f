package report

// Totals holds every cross-actor aggregate of a report.
type Totals struct {
	TotalMessages         uint64 `json:"total_messages" yaml:"total_messages"`
	TotalMessagesSent     uint64 `json:"total_messages_sent" yaml:"total_messages_sent"`
	TotalMessagesReceived uint64 `json:"total_messages_received" yaml:"total_messages_received"`
	TotalBytes            uint64 `json:"total_bytes" yaml:"total_bytes"`
	TotalBytesSent        uint64 `json:"total_bytes_sent" yaml:"total_bytes_sent"`
	TotalBytesReceived    uint64 `json:"total_bytes_received" yaml:"total_bytes_received"`
	TotalMessageBatches   uint64 `json:"total_message_batches" yaml:"total_message_batches"`
}

// Totals computes all aggregates in one value.
func (r *BenchmarkReport) Totals() Totals {
	return Totals{
		TotalMessages:         r.TotalMessages(),
		TotalMessagesSent:     r.TotalMessagesSent(),
		TotalMessagesReceived: r.TotalMessagesReceived(),
		TotalBytes:            r.TotalBytes(),
		TotalBytesSent:        r.TotalBytesSent(),
		TotalBytesReceived:    r.TotalBytesReceived(),
		TotalMessageBatches:   r.TotalMessageBatches(),
	}
}

// sum adds field(summary) over every actor record accepted by keep.
// A nil keep accepts all records.
func (r *BenchmarkReport) sum(keep func(ActorKind) bool, field func(*IndividualMetricsSummary) uint64) uint64 {
	var total uint64
	for i := range r.IndividualMetrics {
		s := &r.IndividualMetrics[i].Summary
		if keep != nil && !keep(s.ActorKind) {
			continue
		}
		total += field(s)
	}
	return total
}

func messages(s *IndividualMetricsSummary) uint64 { return s.TotalMessages }
func userBytes(s *IndividualMetricsSummary) uint64 { return s.TotalUserDataBytes }
func batches(s *IndividualMetricsSummary) uint64 { return s.TotalMessageBatches }

// TotalMessages returns the number of messages handled by all actors.
func (r *BenchmarkReport) TotalMessages() uint64 {
	return r.sum(nil, messages)
}

// TotalMessagesSent sums messages over every actor that is not a pure consumer.
// Producing consumers count towards both sent and received.
func (r *BenchmarkReport) TotalMessagesSent() uint64 {
	return r.sum(ActorKind.sends, messages)
}

// TotalMessagesReceived sums messages over every actor that is not a pure producer.
func (r *BenchmarkReport) TotalMessagesReceived() uint64 {
	return r.sum(ActorKind.receives, messages)
}

// TotalBytesSent sums payload bytes over every actor that is not a pure consumer.
func (r *BenchmarkReport) TotalBytesSent() uint64 {
	return r.sum(ActorKind.sends, userBytes)
}

// TotalBytesReceived sums payload bytes over every actor that is not a pure producer.
func (r *BenchmarkReport) TotalBytesReceived() uint64 {
	return r.sum(ActorKind.receives, userBytes)
}

// TotalBytes returns the payload bytes handled by all actors.
func (r *BenchmarkReport) TotalBytes() uint64 {
	return r.sum(nil, userBytes)
}

// TotalMessageBatches returns the number of batches observed by all actors.
// When no actor tracked batches (the sum is 0) the configured target
// Params.MessageBatches is returned instead.
func (r *BenchmarkReport) TotalMessageBatches() uint64 {
	if n := r.sum(nil, batches); n != 0 {
		return n
	}
	return r.Params.MessageBatches
}
