package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a report document.
type Format string

const (
	FormatAuto Format = "auto" // chosen from the file extension
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned when a report format cannot be determined.
var ErrUnknownFormat = errors.New("unknown report format")

// IsValidFormat returns true if the given string is a recognized format.
func IsValidFormat(format string) bool {
	switch Format(format) {
	case FormatAuto, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// FormatFromPath picks the format of a report file by its extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%s: %w (expected .json, .yaml or .yml)", path, ErrUnknownFormat)
	}
}

// Decode reads one report document. In strict mode unknown fields are
// rejected, so typos in hand-written reports surface as errors.
// The decoded report is not validated; see BenchmarkReport.Validate.
func Decode(r io.Reader, format Format, strict bool) (*BenchmarkReport, error) {
	var rep BenchmarkReport
	switch format {
	case FormatJSON:
		decoder := json.NewDecoder(r)
		if strict {
			decoder.DisallowUnknownFields()
		}
		if err := decoder.Decode(&rep); err != nil {
			return nil, fmt.Errorf("decoding JSON report: %w", err)
		}
	case FormatYAML:
		decoder := yaml.NewDecoder(r)
		decoder.KnownFields(strict)
		if err := decoder.Decode(&rep); err != nil {
			return nil, fmt.Errorf("decoding YAML report: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	return &rep, nil
}

// Load reads and decodes the report stored at path.
// FormatAuto resolves the format from the file extension.
func Load(path string, format Format, strict bool) (*BenchmarkReport, error) {
	if format == FormatAuto || format == "" {
		f, err := FormatFromPath(path)
		if err != nil {
			return nil, err
		}
		format = f
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	rep, err := Decode(bytes.NewReader(data), format, strict)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logrus.Debugf("Loaded %s report %s: %d actors, %d groups",
		format, path, len(rep.IndividualMetrics), len(rep.GroupMetrics))
	return rep, nil
}
