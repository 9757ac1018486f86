// Copyright 2026 The ASCIIDiagram Contributors
// All rights reserved.

package asciidiagram

import "encoding/base64"

// Defaults used for any Options field left at its zero value.
const (
	DefaultBoxWidth   = 10
	DefaultBoxHeight  = 20
	DefaultLineColor  = "#333333"
	DefaultTextColor  = "#000000"
	DefaultBoxColor   = "#f8f9fa"
	DefaultFontFamily = "monospace"
	DefaultFontSize   = 14
	DefaultPadding    = 10
)

// Options configures a conversion. Text is the ASCII source; every other
// field falls back to its default when zero.
type Options struct {
	Text string

	// BoxWidth and BoxHeight are the pixel size of one grid cell.
	BoxWidth  int
	BoxHeight int

	// LineColor strokes lines, arrowheads and box borders. TextColor fills
	// text; BoxColor fills box interiors.
	LineColor string
	TextColor string
	BoxColor  string

	FontFamily string
	FontSize   int

	// Padding is the outer margin around the whole diagram.
	Padding int

	// Debug overlays the cell grid and per-cell source characters.
	Debug bool
}

func (o Options) withDefaults() Options {
	if o.BoxWidth == 0 {
		o.BoxWidth = DefaultBoxWidth
	}
	if o.BoxHeight == 0 {
		o.BoxHeight = DefaultBoxHeight
	}
	if o.LineColor == "" {
		o.LineColor = DefaultLineColor
	}
	if o.TextColor == "" {
		o.TextColor = DefaultTextColor
	}
	if o.BoxColor == "" {
		o.BoxColor = DefaultBoxColor
	}
	if o.FontFamily == "" {
		o.FontFamily = DefaultFontFamily
	}
	if o.FontSize == 0 {
		o.FontSize = DefaultFontSize
	}
	if o.Padding == 0 {
		o.Padding = DefaultPadding
	}
	return o
}

// Diagram converts one ASCII diagram. Each instance owns its grid and shape
// list exclusively; independent conversions may run concurrently on separate
// instances with no locking.
type Diagram struct {
	opts   Options
	grid   *grid
	shapes []Shape
	root   *Element
}

// New returns a Diagram for the given options with defaults applied. Nothing
// is parsed until the first call to Convert, Shapes, String or DataURL.
func New(o Options) *Diagram {
	return &Diagram{opts: o.withDefaults()}
}

// Convert parses the text, recognizes shapes, and renders the SVG element.
// The result is memoized for the instance's lifetime. Convert is total over
// any input: unrecognized characters degrade to text and malformed diagrams
// degrade to odd-looking output, never an error.
func (d *Diagram) Convert() *Element {
	if d.root != nil {
		return d.root
	}
	d.grid = parseGrid(d.opts.Text)
	d.shapes = d.grid.findShapes(float64(d.opts.BoxWidth), float64(d.opts.BoxHeight))
	d.root = render(d.grid, d.shapes, d.opts)
	return d.root
}

// Shapes returns the recognized shapes in emission order: boxes, lines,
// texts.
func (d *Diagram) Shapes() []Shape {
	d.Convert()
	return d.shapes
}

// Size returns the overall pixel dimensions including padding.
func (d *Diagram) Size() (w, h int) {
	d.Convert()
	w = d.grid.cols*d.opts.BoxWidth + 2*d.opts.Padding
	h = d.grid.rows*d.opts.BoxHeight + 2*d.opts.Padding
	return w, h
}

// String serializes the converted SVG document.
func (d *Diagram) String() string {
	return d.Convert().String()
}

// DataURL returns the serialized SVG as a data:image/svg+xml URI.
func (d *Diagram) DataURL() string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(d.String()))
}
