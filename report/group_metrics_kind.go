package report

// GroupMetricsKind classifies which actors a BenchmarkGroupMetrics aggregates.
type GroupMetricsKind string

const (
	GroupMetricsKindProducers             GroupMetricsKind = "producers"
	GroupMetricsKindConsumers             GroupMetricsKind = "consumers"
	GroupMetricsKindProducersAndConsumers GroupMetricsKind = "producers_and_consumers"
	GroupMetricsKindProducingConsumers    GroupMetricsKind = "producing_consumers"
)

// groupKindStyle is the presentation record for one group kind.
type groupKindStyle struct {
	name     string   // display name
	label    string   // prefix of the group summary line
	actor    string   // singular noun used in "average throughput per <actor>"
	emphasis Emphasis // attention for kinds mixing heterogeneous roles
}

var groupKindStyles = map[GroupMetricsKind]groupKindStyle{
	GroupMetricsKindProducers: {
		name: "Producers", label: "Producers Results", actor: "producer", emphasis: EmphasisNeutral,
	},
	GroupMetricsKindConsumers: {
		name: "Consumers", label: "Consumers Results", actor: "consumer", emphasis: EmphasisNeutral,
	},
	GroupMetricsKindProducersAndConsumers: {
		name: "Producers and Consumers", label: "Aggregate Results", actor: "actor", emphasis: EmphasisAttention,
	},
	GroupMetricsKindProducingConsumers: {
		name: "Producing Consumers", label: "Producing Consumer Results", actor: "producing consumer", emphasis: EmphasisAttention,
	},
}

func (k GroupMetricsKind) IsValid() bool {
	_, ok := groupKindStyles[k]
	return ok
}

func (k GroupMetricsKind) String() string {
	if s, ok := groupKindStyles[k]; ok {
		return s.name
	}
	return string(k)
}

// Label returns the prefix of the group's summary line.
func (k GroupMetricsKind) Label() string {
	if s, ok := groupKindStyles[k]; ok {
		return s.label
	}
	return string(k) + " Results"
}

// Actor returns the singular actor noun for the group, e.g. "producer".
func (k GroupMetricsKind) Actor() string {
	if s, ok := groupKindStyles[k]; ok {
		return s.actor
	}
	return "actor"
}

// Emphasis returns how the group's summary line should be styled.
// Unknown kinds get attention emphasis.
func (k GroupMetricsKind) Emphasis() Emphasis {
	if s, ok := groupKindStyles[k]; ok {
		return s.emphasis
	}
	return EmphasisAttention
}
