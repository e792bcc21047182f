package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Emphasis classifies a summary line for whoever renders it.
type Emphasis int

const (
	// EmphasisParams marks the run configuration line.
	EmphasisParams Emphasis = iota
	// EmphasisNeutral marks informational group lines.
	EmphasisNeutral
	// EmphasisAttention marks groups combining heterogeneous actor roles
	// into one number, where the reader should double-check interpretation.
	EmphasisAttention
)

func (e Emphasis) String() string {
	switch e {
	case EmphasisParams:
		return "params"
	case EmphasisNeutral:
		return "neutral"
	case EmphasisAttention:
		return "attention"
	default:
		return fmt.Sprintf("Emphasis(%d)", int(e))
	}
}

// Line is one rendered summary line and its styling classification.
type Line struct {
	Text     string
	Emphasis Emphasis
}

// topicsPerStream is fixed until the run parameters carry a topic count.
const topicsPerStream = "1 topic per stream, "

// ParamsLine describes the run configuration and the aggregate totals.
// Clauses for zero producer, consumer, partition or consumer group counts
// are left out.
func (r *BenchmarkReport) ParamsLine() Line {
	p := r.Params
	var b strings.Builder

	fmt.Fprintf(&b, "Benchmark: %s, ", p.BenchmarkKind)
	if p.Producers != 0 {
		if p.BenchmarkKind.IsProducingConsumer() {
			fmt.Fprintf(&b, "%d producing consumers, ", p.Producers)
		} else {
			fmt.Fprintf(&b, "%d producers, ", p.Producers)
		}
	}
	if p.Consumers != 0 {
		fmt.Fprintf(&b, "%d consumers, ", p.Consumers)
	}
	fmt.Fprintf(&b, "%d streams, ", p.Streams)
	b.WriteString(topicsPerStream)
	if p.Partitions != 0 {
		fmt.Fprintf(&b, "%d partitions per topic, ", p.Partitions)
	}
	if p.ConsumerGroups != 0 {
		fmt.Fprintf(&b, "%d consumer groups, ", p.ConsumerGroups)
	}
	fmt.Fprintf(&b, "%d messages, ", r.TotalMessages())
	fmt.Fprintf(&b, "%d messages per batch, ", p.MessagesPerBatch)
	fmt.Fprintf(&b, "%d message batches, ", p.MessageBatches)
	fmt.Fprintf(&b, "%d bytes per message, ", p.MessageSize)
	fmt.Fprintf(&b, "%s of data processed", humanize.Bytes(r.TotalBytes()))

	return Line{Text: b.String(), Emphasis: EmphasisParams}
}

// SummaryLine renders the group's statistics as one line, labeled and
// emphasized according to the group kind. Fails with ErrEmptyTimeSeries
// when the total test time cannot be determined.
func (g *BenchmarkGroupMetrics) SummaryLine() (Line, error) {
	totalTime, err := g.TotalTestTime()
	if err != nil {
		return Line{}, fmt.Errorf("%s: %w", g.Summary.Kind.Label(), err)
	}
	s := &g.Summary
	kind := s.Kind

	text := fmt.Sprintf("%s: Total throughput: %.2f MB/s, %.0f messages/s, average throughput per %s: %.2f MB/s, "+
		"p50 latency: %.2f ms, p90 latency: %.2f ms, p95 latency: %.2f ms, "+
		"p99 latency: %.2f ms, p999 latency: %.2f ms, p9999 latency: %.2f ms, average latency: %.2f ms, "+
		"median latency: %.2f ms, min: %.2f ms, max: %.2f ms, std dev: %.2f ms, total time: %.2f s",
		kind.Label(),
		s.TotalThroughputMegabytesPerSecond, s.TotalThroughputMessagesPerSecond,
		kind.Actor(), s.AverageThroughputMegabytesPerSecond,
		s.AverageP50LatencyMs, s.AverageP90LatencyMs, s.AverageP95LatencyMs,
		s.AverageP99LatencyMs, s.AverageP999LatencyMs, s.AverageP9999LatencyMs, s.AverageLatencyMs,
		s.AverageMedianLatencyMs, s.MinLatencyMs, s.MaxLatencyMs, s.StdDevLatencyMs, totalTime,
	)
	return Line{Text: text, Emphasis: kind.Emphasis()}, nil
}

// Summary validates the report and returns the params line followed by one
// line per group, in stored order. No line is returned when validation fails.
func (r *BenchmarkReport) Summary() ([]Line, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	lines := make([]Line, 0, len(r.GroupMetrics)+1)
	lines = append(lines, r.ParamsLine())
	for i := range r.GroupMetrics {
		line, err := r.GroupMetrics[i].SummaryLine()
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// PrintSummary emits the summary lines to sink in order and stops at the
// first emission error.
func (r *BenchmarkReport) PrintSummary(sink Sink) error {
	lines, err := r.Summary()
	if err != nil {
		return err
	}
	for _, line := range lines {
		if err := sink.Emit(line); err != nil {
			return fmt.Errorf("emitting summary: %w", err)
		}
	}
	return nil
}
