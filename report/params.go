package report

// BenchmarkParams is the configuration a benchmark run was started with.
// A count of 0 means the dimension does not apply and is left out of the summary.
type BenchmarkParams struct {
	BenchmarkKind    BenchmarkKind `json:"benchmark_kind" yaml:"benchmark_kind"`
	Producers        uint32        `json:"producers" yaml:"producers"`
	Consumers        uint32        `json:"consumers" yaml:"consumers"`
	Streams          uint32        `json:"streams" yaml:"streams"`
	Partitions       uint32        `json:"partitions" yaml:"partitions"`
	ConsumerGroups   uint32        `json:"consumer_groups" yaml:"consumer_groups"`
	MessagesPerBatch uint32        `json:"messages_per_batch" yaml:"messages_per_batch"`
	MessageBatches   uint64        `json:"message_batches" yaml:"message_batches"` // configured target
	MessageSize      uint32        `json:"message_size" yaml:"message_size"`       // bytes
}
