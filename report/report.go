package report

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTimeSeries is returned when a group has no throughput samples,
	// so its total test time is undefined.
	ErrEmptyTimeSeries = errors.New("throughput time series has no points")
	// ErrUnorderedTimeSeries is returned when samples are not time-ascending.
	ErrUnorderedTimeSeries = errors.New("throughput time series is not ordered by time")
	// ErrNonFiniteValue is returned for NaN or infinite statistics.
	ErrNonFiniteValue = errors.New("statistic is not a finite number")
	// ErrUnknownKind is returned for unrecognized kind tags.
	ErrUnknownKind = errors.New("unknown kind")
)

// BenchmarkReport is the complete result of one benchmark run.
// It is built once by the measurement side and treated as read-only here:
// aggregation and presentation never modify it.
type BenchmarkReport struct {
	Params            BenchmarkParams         `json:"params" yaml:"params"`
	IndividualMetrics []IndividualMetrics     `json:"individual_metrics" yaml:"individual_metrics"` // one per actor, creation order
	GroupMetrics      []BenchmarkGroupMetrics `json:"group_metrics" yaml:"group_metrics"`           // display order
}

// Validate checks the invariants the presenter relies on: known kind tags,
// finite group statistics and a non-empty, time-ordered throughput series
// for every group. Returns the first violation found.
func (r *BenchmarkReport) Validate() error {
	if !r.Params.BenchmarkKind.IsValid() {
		return fmt.Errorf("params: benchmark kind %q: %w", r.Params.BenchmarkKind, ErrUnknownKind)
	}
	for i, m := range r.IndividualMetrics {
		if !m.Summary.ActorKind.IsValid() {
			return fmt.Errorf("individual metrics %d: actor kind %q: %w", i, m.Summary.ActorKind, ErrUnknownKind)
		}
	}
	for i := range r.GroupMetrics {
		if err := r.GroupMetrics[i].validate(); err != nil {
			return fmt.Errorf("group metrics %d (%s): %w", i, r.GroupMetrics[i].Summary.Kind, err)
		}
	}
	return nil
}

func (g *BenchmarkGroupMetrics) validate() error {
	if !g.Summary.Kind.IsValid() {
		return fmt.Errorf("group kind %q: %w", g.Summary.Kind, ErrUnknownKind)
	}
	for _, stat := range g.Summary.statistics() {
		if !isFinite(stat.value) {
			return fmt.Errorf("%s=%v: %w", stat.name, stat.value, ErrNonFiniteValue)
		}
	}
	if len(g.AvgThroughputMBTS.Points) == 0 {
		return ErrEmptyTimeSeries
	}
	if !g.AvgThroughputMBTS.isOrdered() {
		return ErrUnorderedTimeSeries
	}
	return nil
}
