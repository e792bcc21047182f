package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// Sink receives rendered summary lines, one at a time, in report order.
type Sink interface {
	Emit(line Line) error
}

// ColorMode controls whether ConsoleSink writes ANSI colors.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // colors when the process stdout is a terminal
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValidColorMode returns true if mode is a recognized color mode.
func IsValidColorMode(mode string) bool {
	switch ColorMode(mode) {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}

// ConsoleSink writes each line to w, colored by emphasis:
// params blue, neutral green, attention red.
type ConsoleSink struct {
	w      io.Writer
	colors map[Emphasis]*color.Color
}

// NewConsoleSink creates a ConsoleSink writing to w.
func NewConsoleSink(w io.Writer, mode ColorMode) *ConsoleSink {
	colors := map[Emphasis]*color.Color{
		EmphasisParams:    color.New(color.FgBlue),
		EmphasisNeutral:   color.New(color.FgGreen),
		EmphasisAttention: color.New(color.FgRed),
	}
	for _, c := range colors {
		switch mode {
		case ColorAlways:
			c.EnableColor()
		case ColorNever:
			c.DisableColor()
		}
	}
	return &ConsoleSink{w: w, colors: colors}
}

// Emit writes the line followed by a newline.
func (s *ConsoleSink) Emit(line Line) error {
	c, ok := s.colors[line.Emphasis]
	if !ok {
		_, err := fmt.Fprintln(s.w, line.Text)
		return err
	}
	_, err := c.Fprintln(s.w, line.Text)
	return err
}

// LogSink routes lines through a logrus logger. Attention lines are logged
// at warn level, all others at info.
type LogSink struct {
	logger logrus.FieldLogger
}

// NewLogSink creates a LogSink; a nil logger means the logrus standard logger.
func NewLogSink(logger logrus.FieldLogger) *LogSink {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogSink{logger: logger}
}

// Emit logs the line with an "emphasis" field. It never fails.
func (s *LogSink) Emit(line Line) error {
	entry := s.logger.WithField("emphasis", line.Emphasis.String())
	if line.Emphasis == EmphasisAttention {
		entry.Warn(line.Text)
	} else {
		entry.Info(line.Text)
	}
	return nil
}
