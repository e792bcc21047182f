package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cstruct/iggy/report"
)

const (
	sinkConsole = "console"
	sinkLog     = "log"
)

// newSink builds the summary sink selected by --sink and --color.
func newSink(cmd *cobra.Command) (report.Sink, error) {
	switch sinkKind {
	case sinkConsole:
		if !report.IsValidColorMode(colorMode) {
			return nil, fmt.Errorf("invalid color mode %q (valid: auto, always, never)", colorMode)
		}
		return report.NewConsoleSink(cmd.OutOrStdout(), report.ColorMode(colorMode)), nil
	case sinkLog:
		return report.NewLogSink(nil), nil
	default:
		return nil, fmt.Errorf("invalid sink %q (valid: %s, %s)", sinkKind, sinkConsole, sinkLog)
	}
}

// writeTotals encodes totals to w as indented JSON or YAML.
func writeTotals(w io.Writer, totals report.Totals, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(totals)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(totals); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("invalid output format %q (valid: json, yaml)", format)
	}
}
