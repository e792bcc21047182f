package report

import (
	"strings"
	"testing"

	"github.com/cstruct/iggy/report/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_SampleJSON_TotalsAndSummary(t *testing.T) {
	// GIVEN the sample pinned producer-and-consumer report
	path := testutil.TestdataPath(t, testutil.SampleReportJSON)

	// WHEN loaded with format detection
	r, err := Load(path, FormatAuto, true)
	require.NoError(t, err)

	// THEN totals split producers and consumers
	assert.Equal(t, Totals{
		TotalMessages:         400000,
		TotalMessagesSent:     200000,
		TotalMessagesReceived: 200000,
		TotalBytes:            400000000,
		TotalBytesSent:        200000000,
		TotalBytesReceived:    200000000,
		TotalMessageBatches:   400,
	}, r.Totals())

	// AND the summary renders one line per group after the params line
	lines, err := r.Summary()
	require.NoError(t, err)
	require.Len(t, lines, 4)
	assert.Equal(t, "Benchmark: Pinned Producer And Consumer, 2 producers, 2 consumers, 2 streams, "+
		"1 topic per stream, 1 partitions per topic, 400000 messages, 1000 messages per batch, "+
		"100 message batches, 1000 bytes per message, 400 MB of data processed", lines[0].Text)
	assert.Contains(t, lines[3].Text, "Aggregate Results: Total throughput: 2469.13 MB/s, 2469135 messages/s, ")
	assert.Contains(t, lines[3].Text, "total time: 12.34 s")
	assert.Equal(t, EmphasisAttention, lines[3].Emphasis)
}

func TestLoad_ProducingConsumerYAML_FallsBackToConfiguredBatches(t *testing.T) {
	path := testutil.TestdataPath(t, testutil.ProducingConsumerReportYAML)

	r, err := Load(path, FormatAuto, true)
	require.NoError(t, err)

	assert.Equal(t, uint64(50), r.TotalMessageBatches())
	assert.Equal(t, uint64(1500), r.TotalMessagesSent())
	assert.Equal(t, uint64(1500), r.TotalMessagesReceived())
	line := r.ParamsLine().Text
	assert.Contains(t, line, "3 producing consumers, ")
	assert.NotContains(t, line, "partitions per topic")
	assert.Contains(t, line, "150 kB of data processed")
}

func TestDecode_StrictJSON_RejectsUnknownField(t *testing.T) {
	doc := `{"params": {"benchmark_kind": "pinned_producer", "topics": 3}}`

	_, err := Decode(strings.NewReader(doc), FormatJSON, true)
	assert.Error(t, err)

	r, err := Decode(strings.NewReader(doc), FormatJSON, false)
	require.NoError(t, err)
	assert.Equal(t, BenchmarkKindPinnedProducer, r.Params.BenchmarkKind)
}

func TestDecode_StrictYAML_RejectsUnknownField(t *testing.T) {
	doc := "params:\n  benchmark_kind: pinned_consumer\n  topics: 3\n"

	_, err := Decode(strings.NewReader(doc), FormatYAML, true)
	assert.Error(t, err)

	r, err := Decode(strings.NewReader(doc), FormatYAML, false)
	require.NoError(t, err)
	assert.Equal(t, BenchmarkKindPinnedConsumer, r.Params.BenchmarkKind)
}

func TestDecode_UnknownFormat(t *testing.T) {
	_, err := Decode(strings.NewReader("{}"), Format("toml"), false)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("out/report.JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = FormatFromPath("report.yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = FormatFromPath("report.csv")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoad_MissingFile_Error(t *testing.T) {
	_, err := Load("does-not-exist.json", FormatAuto, false)
	assert.ErrorContains(t, err, "reading report")
}

func TestIsValidFormat(t *testing.T) {
	assert.True(t, IsValidFormat("auto"))
	assert.True(t, IsValidFormat("json"))
	assert.True(t, IsValidFormat("yaml"))
	assert.False(t, IsValidFormat("xml"))
}
