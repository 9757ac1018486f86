// Copyright 2026 The ASCIIDiagram Contributors
// All rights reserved.

// Package cli implements the a2svg command-line interface.
//
// The command reads an ASCII diagram from a file or stdin, converts it with
// the asciidiagram library, and writes SVG to a file or stdout. Rendering
// options come from flags or from a TOML style file; flags win when both are
// given. The --verbose (-v) flag enables debug-level logging to stderr via
// the charmbracelet/log library.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w with "HH:MM:SS.ms" timestamps,
// filtering messages below level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with
// the elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
