// Package report aggregates and presents the results of a message-system
// benchmark run.
//
// # Reading Guide
//
// Start with these files:
//   - report.go: BenchmarkReport, the read-only aggregate root, and Validate
//   - aggregate.go: cross-actor totals (messages, bytes, batches)
//   - summary.go: the parameter line and one line per group, as (text, emphasis) pairs
//
// # Data flow
//
// A report is produced by the measurement side of the benchmark and arrives
// fully populated (usually decoded by Load from a JSON or YAML document).
// Aggregation and presentation never mutate it:
//
//	rep, _ := report.Load("report.json", report.FormatAuto, false)
//	totals := rep.Totals()
//	_ = rep.PrintSummary(report.NewConsoleSink(os.Stdout, report.ColorAuto))
//
// # Sinks
//
// The presenter only builds Lines. Emission is done by a Sink:
//   - ConsoleSink: colored terminal output (params blue, neutral green, attention red)
//   - LogSink: logrus entries (attention lines at warn level)
package report
