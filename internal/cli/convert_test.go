// Copyright 2026 The ASCIIDiagram Contributors
// All rights reserved.

package cli

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/maruel/ut"
)

func TestConvert(t *testing.T) {
	t.Parallel()
	logger := newLogger(io.Discard, log.ErrorLevel)
	out := convert(Style{}, "+--+\n|ok|\n+--+", false, logger)
	ut.AssertEqual(t, true, strings.HasPrefix(out, "<svg"))
	ut.AssertEqual(t, true, strings.Contains(out, "ok"))
}

func TestConvertDataURL(t *testing.T) {
	t.Parallel()
	logger := newLogger(io.Discard, log.ErrorLevel)
	out := convert(Style{}, "x", true, logger)
	ut.AssertEqual(t, true, strings.HasPrefix(out, "data:image/svg+xml;base64,"))
	ut.AssertEqual(t, true, strings.HasSuffix(out, "\n"))
}

func TestConvertAppliesStyle(t *testing.T) {
	t.Parallel()
	logger := newLogger(io.Discard, log.ErrorLevel)
	out := convert(Style{LineColor: "#ff0000"}, "a --> b", false, logger)
	ut.AssertEqual(t, true, strings.Contains(out, "#ff0000"))
}
