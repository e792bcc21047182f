package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cstruct/iggy/report"
)

var (
	// CLI flags shared by all subcommands
	reportPath   string // Path of the benchmark report document
	reportFormat string // Report encoding: auto, json or yaml
	strict       bool   // Reject unknown fields in the report document
	logLevel     string // Log verbosity level

	// CLI flags for the summary command
	sinkKind  string // Where summary lines go: console or log
	colorMode string // Console coloring: auto, always or never

	// CLI flags for the totals command
	outputFormat string // Totals encoding: json or yaml
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "iggy-bench-report",
	Short: "Aggregate and summarize message benchmark reports",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// summaryCmd prints the params line and one line per group
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the human-readable summary of a benchmark report",
	Run: func(cmd *cobra.Command, args []string) {
		sink, err := newSink(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		rep := loadReport()
		if err := rep.PrintSummary(sink); err != nil {
			logrus.Fatalf("Cannot summarize %s: %v", reportPath, err)
		}
	},
}

// totalsCmd prints the cross-actor aggregates as a document
var totalsCmd = &cobra.Command{
	Use:   "totals",
	Short: "Print message, byte and batch totals of a benchmark report",
	Run: func(cmd *cobra.Command, args []string) {
		rep := loadReport()
		if err := writeTotals(cmd.OutOrStdout(), rep.Totals(), outputFormat); err != nil {
			logrus.Fatalf("Cannot write totals: %v", err)
		}
	},
}

// loadReport reads the report named by --report or exits.
func loadReport() *report.BenchmarkReport {
	if !report.IsValidFormat(reportFormat) {
		logrus.Fatalf("Invalid report format: %s", reportFormat)
	}
	rep, err := report.Load(reportPath, report.Format(reportFormat), strict)
	if err != nil {
		logrus.Fatalf("Failed to load report: %v", err)
	}
	return rep
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&reportPath, "report", "", "Path of the benchmark report (.json, .yaml or .yml)")
	rootCmd.PersistentFlags().StringVar(&reportFormat, "format", string(report.FormatAuto), "Report format: auto, json, yaml")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Reject unknown fields in the report")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	_ = rootCmd.MarkPersistentFlagRequired("report")

	summaryCmd.Flags().StringVar(&sinkKind, "sink", sinkConsole, "Summary destination: console, log")
	summaryCmd.Flags().StringVar(&colorMode, "color", string(report.ColorAuto), "Console colors: auto, always, never")

	totalsCmd.Flags().StringVar(&outputFormat, "output", "json", "Totals encoding: json, yaml")

	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(totalsCmd)
}
