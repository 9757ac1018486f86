// Copyright 2026 The ASCIIDiagram Contributors
// All rights reserved.

package cli

import (
	"github.com/charmbracelet/log"

	"github.com/david3xu/asciidiagram"
)

// convert renders the diagram and returns either serialized SVG or a data
// URI. Conversion itself never fails; a malformed diagram just renders
// strangely.
func convert(s Style, text string, dataURL bool, logger *log.Logger) string {
	d := asciidiagram.New(s.options(text))
	w, h := d.Size()
	logger.Debug("Recognized shapes", "count", len(d.Shapes()), "width", w, "height", h)
	if dataURL {
		return d.DataURL() + "\n"
	}
	return d.String()
}
