// Package testutil provides shared test infrastructure for the report
// test packages: locating the sample documents in testdata/.
package testutil

import (
	"path/filepath"
	"runtime"
	"testing"
)

const (
	// SampleReportJSON is a pinned producer-and-consumer run with two
	// producers, two consumers and three groups.
	SampleReportJSON = "sample_report.json"
	// ProducingConsumerReportYAML is an end-to-end run with three
	// producing consumers that did not track batches.
	ProducingConsumerReportYAML = "producing_consumer_report.yaml"
)

// TestdataPath returns the absolute path of a file in the repo root testdata/.
// The path is resolved relative to this source file: report/internal/testutil/ → testdata/.
func TestdataPath(t *testing.T, name string) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", name)
}
