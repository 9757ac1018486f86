// Copyright 2026 The ASCIIDiagram Contributors
// All rights reserved.

package asciidiagram

import "fmt"

// Rect is a pixel-space bounding box.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// String implements fmt.Stringer on Rect.
func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}

// Point is a pixel-space coordinate.
type Point struct {
	X, Y float64
}

// Side names one of the four edges of a box.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	}
	return "unknown"
}

// Connector is a named attachment point on a box edge, used by downstream
// line routing.
type Connector struct {
	Side Side
	X, Y float64
}

// Arrowhead marks an arrow cell embedded in a line path.
type Arrowhead struct {
	X, Y float64
	Dir  Direction
}

// Shape is a recognized diagram primitive: a *Box, a *Line or a *Text. Every
// shape's bounds derive purely from the grid cells that produced it, and no
// grid cell contributes to more than one shape.
type Shape interface {
	fmt.Stringer
	Bounds() Rect
}

// Box is an axis-aligned rectangle whose borders were fully drawn in the
// grid. Its bounds cover the interior cells, so an interior of WxH characters
// measures W*cellWidth by H*cellHeight.
type Box struct {
	bounds Rect
	label  string
	conns  [4]Connector
}

func (b *Box) Bounds() Rect { return b.bounds }

// Label returns the box interior text. Rows are joined with newlines;
// trailing whitespace per row is trimmed, leading whitespace preserved.
func (b *Box) Label() string { return b.label }

// Connectors returns the midpoints of the four border edges in side order
// top, right, bottom, left.
func (b *Box) Connectors() [4]Connector { return b.conns }

// Connector returns the attachment point on the given side.
func (b *Box) Connector(s Side) Connector { return b.conns[s] }

func (b *Box) String() string {
	return fmt.Sprintf("Box{%s %q}", b.bounds, b.label)
}

// Line is a maximal connected run of line, junction and arrow cells, traced
// with 4-connectivity. Points are cell centers with collinear runs collapsed.
type Line struct {
	bounds Rect
	points []Point
	arrows []Arrowhead
}

func (l *Line) Bounds() Rect { return l.bounds }

// Points returns the ordered polyline points.
func (l *Line) Points() []Point { return l.points }

// Arrows returns the arrowheads embedded in the path, in trace order.
func (l *Line) Arrows() []Arrowhead { return l.arrows }

func (l *Line) String() string {
	return fmt.Sprintf("Line{%s %d points %d arrows}", l.bounds, len(l.points), len(l.arrows))
}

// Text is a horizontal run of text cells. Multi-line blocks become one Text
// per grid row.
type Text struct {
	bounds  Rect
	content string
}

func (t *Text) Bounds() Rect { return t.bounds }

// Content returns the run's text, trimmed of trailing whitespace.
func (t *Text) Content() string { return t.content }

func (t *Text) String() string {
	return fmt.Sprintf("Text{%s %q}", t.bounds, t.content)
}
