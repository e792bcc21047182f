package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func actor(kind ActorKind, messages, userBytes, batches uint64) IndividualMetrics {
	return IndividualMetrics{Summary: IndividualMetricsSummary{
		ActorKind:           kind,
		TotalMessages:       messages,
		TotalUserDataBytes:  userBytes,
		TotalMessageBatches: batches,
	}}
}

func TestTotals_ProducerAndConsumer_SplitsSentAndReceived(t *testing.T) {
	// GIVEN one producer and one consumer that did not track batches
	r := &BenchmarkReport{
		Params: BenchmarkParams{MessageBatches: 5},
		IndividualMetrics: []IndividualMetrics{
			actor(ActorKindProducer, 100, 1000, 0),
			actor(ActorKindConsumer, 100, 1000, 0),
		},
	}

	// WHEN totals are computed
	got := r.Totals()

	// THEN sent and received are disjoint and batches fall back to the target
	assert.Equal(t, Totals{
		TotalMessages:         200,
		TotalMessagesSent:     100,
		TotalMessagesReceived: 100,
		TotalBytes:            2000,
		TotalBytesSent:        1000,
		TotalBytesReceived:    1000,
		TotalMessageBatches:   5,
	}, got)
}

func TestTotalMessageBatches_TrackedBatches_ReturnsExactSum(t *testing.T) {
	// GIVEN actors where only some tracked batches
	r := &BenchmarkReport{
		Params: BenchmarkParams{MessageBatches: 5},
		IndividualMetrics: []IndividualMetrics{
			actor(ActorKindProducer, 10, 10, 3),
			actor(ActorKindConsumer, 10, 10, 0),
			actor(ActorKindConsumer, 10, 10, 4),
		},
	}

	// THEN the configured target is ignored
	assert.Equal(t, uint64(7), r.TotalMessageBatches())
}

func TestTotals_EmptyReport_ZeroValues(t *testing.T) {
	// GIVEN a report with no actors and no configured batches
	r := &BenchmarkReport{}

	// THEN every total is zero
	assert.Equal(t, Totals{}, r.Totals())
}

func TestTotals_ProducingConsumer_CountsAsSentAndReceived(t *testing.T) {
	// GIVEN a producing consumer next to a pure producer
	r := &BenchmarkReport{
		IndividualMetrics: []IndividualMetrics{
			actor(ActorKindProducingConsumer, 50, 500, 1),
			actor(ActorKindProducer, 20, 200, 1),
		},
	}

	// THEN the producing consumer appears on both sides
	assert.Equal(t, uint64(70), r.TotalMessagesSent())
	assert.Equal(t, uint64(50), r.TotalMessagesReceived())
	assert.Equal(t, uint64(700), r.TotalBytesSent())
	assert.Equal(t, uint64(500), r.TotalBytesReceived())
	assert.Equal(t, uint64(70), r.TotalMessages())
	assert.Equal(t, uint64(700), r.TotalBytes())
}

func TestTotals_StrictRoles_SentPlusReceivedEqualsTotal(t *testing.T) {
	// GIVEN only strict producers and consumers with uneven counts
	r := &BenchmarkReport{
		IndividualMetrics: []IndividualMetrics{
			actor(ActorKindProducer, 7, 70, 0),
			actor(ActorKindConsumer, 11, 110, 0),
			actor(ActorKindProducer, 13, 130, 0),
			actor(ActorKindConsumer, 17, 170, 0),
		},
	}

	// THEN sent + received covers every message exactly once
	assert.Equal(t, r.TotalMessages(), r.TotalMessagesSent()+r.TotalMessagesReceived())
	assert.Equal(t, r.TotalBytes(), r.TotalBytesSent()+r.TotalBytesReceived())
}

func TestTotals_RepeatedCalls_Identical(t *testing.T) {
	// GIVEN a populated report
	r := &BenchmarkReport{
		Params: BenchmarkParams{MessageBatches: 9},
		IndividualMetrics: []IndividualMetrics{
			actor(ActorKindProducer, 1, 2, 0),
			actor(ActorKindProducingConsumer, 3, 4, 0),
		},
	}
	before := r.IndividualMetrics[0]

	// WHEN totals are computed twice
	first, second := r.Totals(), r.Totals()

	// THEN results match and the input is untouched
	assert.Equal(t, first, second)
	assert.Equal(t, before, r.IndividualMetrics[0])
}
