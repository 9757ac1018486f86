// Copyright 2026 The ASCIIDiagram Contributors
// All rights reserved.

package asciidiagram

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

const svgNS = "http://www.w3.org/2000/svg"

// Element is one node of the produced SVG document: a tag name, attributes,
// child elements, and optional text content. Attributes keep insertion order
// so serialization is deterministic.
//
// encoding/xml could marshal this, but it enforces a standard header and
// namespace handling that browsers choke on when the fragment is inlined, so
// serialization is done by hand with escaped text, as small SVG emitters
// usually do.
type Element struct {
	name     string
	attrs    []attribute
	children []*Element
	content  string
}

type attribute struct {
	key, value string
}

// NewElement returns an element with the given tag name.
func NewElement(name string) *Element {
	return &Element{name: name}
}

// Name returns the element's tag name.
func (e *Element) Name() string {
	return e.name
}

// SetAttr sets an attribute, replacing any previous value for the key.
func (e *Element) SetAttr(key, value string) *Element {
	for i := range e.attrs {
		if e.attrs[i].key == key {
			e.attrs[i].value = value
			return e
		}
	}
	e.attrs = append(e.attrs, attribute{key, value})
	return e
}

// Attr returns the value of an attribute, or "" when unset.
func (e *Element) Attr(key string) string {
	for _, a := range e.attrs {
		if a.key == key {
			return a.value
		}
	}
	return ""
}

// Append adds a child and returns the child for chaining.
func (e *Element) Append(child *Element) *Element {
	e.children = append(e.children, child)
	return child
}

// Children returns the element's children in document order.
func (e *Element) Children() []*Element {
	return e.children
}

// SetContent sets the element's text content.
func (e *Element) SetContent(s string) *Element {
	e.content = s
	return e
}

// Content returns the element's text content.
func (e *Element) Content() string {
	return e.content
}

// String serializes the element and its subtree.
func (e *Element) String() string {
	b := &bytes.Buffer{}
	e.writeTo(b, "")
	return b.String()
}

func (e *Element) writeTo(b *bytes.Buffer, indent string) {
	fmt.Fprintf(b, "%s<%s", indent, e.name)
	for _, a := range e.attrs {
		fmt.Fprintf(b, " %s=\"%s\"", a.key, escape(a.value))
	}
	switch {
	case len(e.children) == 0 && e.content == "":
		b.WriteString(" />\n")
	case len(e.children) == 0:
		fmt.Fprintf(b, ">%s</%s>\n", escape(e.content), e.name)
	default:
		b.WriteString(">\n")
		for _, c := range e.children {
			c.writeTo(b, indent+"  ")
		}
		fmt.Fprintf(b, "%s</%s>\n", indent, e.name)
	}
}

func escape(s string) string {
	b := &bytes.Buffer{}
	if err := xml.EscapeText(b, []byte(s)); err != nil {
		panic(err)
	}
	return b.String()
}

// num formats a pixel coordinate without trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// render emits the shape list in fixed z-order: lines with their arrowheads,
// then boxes, then free text. Standalone arrows have no pass of their own;
// arrowheads are fully handled during line rendering. The debug overlay, when
// enabled, is appended after the shape groups and never alters them.
func render(g *grid, shapes []Shape, o Options) *Element {
	w := g.cols*o.BoxWidth + 2*o.Padding
	h := g.rows*o.BoxHeight + 2*o.Padding
	root := NewElement("svg").
		SetAttr("xmlns", svgNS).
		SetAttr("width", strconv.Itoa(w)).
		SetAttr("height", strconv.Itoa(h)).
		SetAttr("viewBox", fmt.Sprintf("0 0 %d %d", w, h))
	content := root.Append(NewElement("g").
		SetAttr("transform", fmt.Sprintf("translate(%d,%d)", o.Padding, o.Padding)))

	lines := content.Append(NewElement("g").
		SetAttr("id", "lines").
		SetAttr("stroke", o.LineColor).
		SetAttr("stroke-width", "2").
		SetAttr("fill", "none"))
	for _, s := range shapes {
		l, ok := s.(*Line)
		if !ok {
			continue
		}
		lines.Append(NewElement("polyline").
			SetAttr("points", flatten(l.Points())))
		for _, a := range l.Arrows() {
			lines.Append(NewElement("polygon").
				SetAttr("points", arrowheadPoints(a, float64(o.BoxWidth))).
				SetAttr("fill", o.LineColor).
				SetAttr("stroke", "none"))
		}
	}

	boxes := content.Append(NewElement("g").
		SetAttr("id", "boxes").
		SetAttr("stroke", o.LineColor).
		SetAttr("stroke-width", "2").
		SetAttr("fill", o.BoxColor))
	boxText := o.TextColor
	if labelColor(o.BoxColor) == "#ffffff" {
		// Dark fills get white labels regardless of the configured text color.
		boxText = "#ffffff"
	}
	for _, s := range shapes {
		b, ok := s.(*Box)
		if !ok {
			continue
		}
		r := b.Bounds()
		boxes.Append(NewElement("rect").
			SetAttr("x", num(r.X)).
			SetAttr("y", num(r.Y)).
			SetAttr("width", num(r.Width)).
			SetAttr("height", num(r.Height)))
		appendBoxLabel(boxes, b, o, boxText)
	}

	texts := content.Append(NewElement("g").
		SetAttr("id", "text").
		SetAttr("stroke", "none").
		SetAttr("font-family", o.FontFamily).
		SetAttr("font-size", strconv.Itoa(o.FontSize)).
		SetAttr("fill", o.TextColor))
	for _, s := range shapes {
		t, ok := s.(*Text)
		if !ok {
			continue
		}
		r := t.Bounds()
		texts.Append(NewElement("text").
			SetAttr("x", num(r.X)).
			SetAttr("y", num(r.Y+0.75*float64(o.BoxHeight))).
			SetContent(t.Content()))
	}

	if o.Debug {
		content.Append(debugOverlay(g, o))
	}
	return root
}

// appendBoxLabel centers the box label as a block: one text element per
// label line, vertically centered using line-height times line count.
func appendBoxLabel(parent *Element, b *Box, o Options, fill string) {
	if b.Label() == "" {
		return
	}
	lines := strings.Split(b.Label(), "\n")
	r := b.Bounds()
	cx := r.X + r.Width/2
	cy := r.Y + r.Height/2
	lineH := float64(o.FontSize) * 1.2
	n := len(lines)
	for i, ln := range lines {
		if ln == "" {
			continue
		}
		y := cy + (float64(i)-float64(n-1)/2)*lineH + float64(o.FontSize)*0.35
		parent.Append(NewElement("text").
			SetAttr("x", num(cx)).
			SetAttr("y", num(y)).
			SetAttr("text-anchor", "middle").
			SetAttr("font-family", o.FontFamily).
			SetAttr("font-size", strconv.Itoa(o.FontSize)).
			SetAttr("fill", fill).
			SetAttr("stroke", "none").
			SetContent(ln))
	}
}

// flatten renders points as a polyline/polygon points attribute.
func flatten(points []Point) string {
	var sb strings.Builder
	for i, p := range points {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(num(p.X))
		sb.WriteByte(',')
		sb.WriteString(num(p.Y))
	}
	return sb.String()
}

// arrowheadPoints computes a triangle centered on the arrow cell, sized
// proportionally to the cell width.
func arrowheadPoints(a Arrowhead, cw float64) string {
	long := cw * 0.5
	wide := cw * 0.4
	var pts []Point
	switch a.Dir {
	case DirRight:
		pts = []Point{{a.X + long, a.Y}, {a.X - long, a.Y - wide}, {a.X - long, a.Y + wide}}
	case DirLeft:
		pts = []Point{{a.X - long, a.Y}, {a.X + long, a.Y - wide}, {a.X + long, a.Y + wide}}
	case DirDown:
		pts = []Point{{a.X, a.Y + long}, {a.X - wide, a.Y - long}, {a.X + wide, a.Y - long}}
	case DirUp:
		pts = []Point{{a.X, a.Y - long}, {a.X - wide, a.Y + long}, {a.X + wide, a.Y + long}}
	}
	return flatten(pts)
}

// debugOverlay draws the cell grid plus the source character of every
// non-empty cell. Diagnostic only.
func debugOverlay(g *grid, o Options) *Element {
	cw, ch := float64(o.BoxWidth), float64(o.BoxHeight)
	w := float64(g.cols) * cw
	h := float64(g.rows) * ch
	dbg := NewElement("g").
		SetAttr("id", "debug").
		SetAttr("opacity", "0.5")
	for x := 0; x <= g.cols; x++ {
		dbg.Append(NewElement("line").
			SetAttr("x1", num(float64(x)*cw)).
			SetAttr("y1", "0").
			SetAttr("x2", num(float64(x)*cw)).
			SetAttr("y2", num(h)).
			SetAttr("stroke", "#cccccc").
			SetAttr("stroke-width", "0.5"))
	}
	for y := 0; y <= g.rows; y++ {
		dbg.Append(NewElement("line").
			SetAttr("x1", "0").
			SetAttr("y1", num(float64(y)*ch)).
			SetAttr("x2", num(w)).
			SetAttr("y2", num(float64(y)*ch)).
			SetAttr("stroke", "#cccccc").
			SetAttr("stroke-width", "0.5"))
	}
	labels := dbg.Append(NewElement("g").
		SetAttr("font-family", "monospace").
		SetAttr("font-size", num(cw*0.8)).
		SetAttr("fill", "#999999"))
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			c := g.at(x, y)
			if c.class.kind == kindEmpty {
				continue
			}
			labels.Append(NewElement("text").
				SetAttr("x", num(float64(x)*cw+1)).
				SetAttr("y", num(float64(y)*ch+cw*0.8)).
				SetContent(string(c.r)))
		}
	}
	return dbg
}
