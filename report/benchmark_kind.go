package report

// BenchmarkKind identifies the benchmark scenario a report was produced by.
type BenchmarkKind string

const (
	BenchmarkKindPinnedProducer                   BenchmarkKind = "pinned_producer"
	BenchmarkKindPinnedConsumer                   BenchmarkKind = "pinned_consumer"
	BenchmarkKindPinnedProducerAndConsumer        BenchmarkKind = "pinned_producer_and_consumer"
	BenchmarkKindBalancedProducer                 BenchmarkKind = "balanced_producer"
	BenchmarkKindBalancedConsumerGroup            BenchmarkKind = "balanced_consumer_group"
	BenchmarkKindBalancedProducerAndConsumerGroup BenchmarkKind = "balanced_producer_and_consumer_group"
	BenchmarkKindEndToEndProducingConsumer        BenchmarkKind = "end_to_end_producing_consumer"
	BenchmarkKindEndToEndProducingConsumerGroup   BenchmarkKind = "end_to_end_producing_consumer_group"
)

// benchmarkKindNames maps each known kind to its display name.
var benchmarkKindNames = map[BenchmarkKind]string{
	BenchmarkKindPinnedProducer:                   "Pinned Producer",
	BenchmarkKindPinnedConsumer:                   "Pinned Consumer",
	BenchmarkKindPinnedProducerAndConsumer:        "Pinned Producer And Consumer",
	BenchmarkKindBalancedProducer:                 "Balanced Producer",
	BenchmarkKindBalancedConsumerGroup:            "Balanced Consumer Group",
	BenchmarkKindBalancedProducerAndConsumerGroup: "Balanced Producer And Consumer Group",
	BenchmarkKindEndToEndProducingConsumer:        "End To End Producing Consumer",
	BenchmarkKindEndToEndProducingConsumerGroup:   "End To End Producing Consumer Group",
}

// IsValid returns true if k is one of the known benchmark kinds.
func (k BenchmarkKind) IsValid() bool {
	_, ok := benchmarkKindNames[k]
	return ok
}

// String returns the display name, or the raw tag for unknown kinds.
func (k BenchmarkKind) String() string {
	if name, ok := benchmarkKindNames[k]; ok {
		return name
	}
	return string(k)
}

// IsProducingConsumer reports whether the kind runs end-to-end actors that
// both produce and consume.
func (k BenchmarkKind) IsProducingConsumer() bool {
	return k == BenchmarkKindEndToEndProducingConsumer || k == BenchmarkKindEndToEndProducingConsumerGroup
}
