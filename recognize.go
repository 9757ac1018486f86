// Copyright 2026 The ASCIIDiagram Contributors
// All rights reserved.

package asciidiagram

import (
	"strings"
	"unicode"
)

// findShapes runs the recognition passes in order: boxes, then lines, then
// text. The passes share the grid's claimed mask, so a cell consumed by an
// earlier pass is invisible to later ones.
func (g *grid) findShapes(cw, ch float64) []Shape {
	var out []Shape
	out = append(out, g.findBoxes(cw, ch)...)
	out = append(out, g.findLines(cw, ch)...)
	out = append(out, g.findTexts(cw, ch)...)
	return out
}

// findBoxes scans every cell in row-major order as a candidate top-left
// corner. First-detected wins: once a cell is claimed by a box it cannot
// start or belong to another.
func (g *grid) findBoxes(cw, ch float64) []Shape {
	var out []Shape
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if g.isClaimed(x, y) {
				continue
			}
			c := g.at(x, y).class
			if c.kind != kindJunction || !c.conn.right || !c.conn.down {
				continue
			}
			if b := g.traceBox(x, y, cw, ch); b != nil {
				out = append(out, b)
			}
		}
	}
	return out
}

// traceBox tries to close a rectangle anchored at the given top-left
// junction: nearest junction rightward along horizontal line cells, nearest
// junction downward along vertical line cells, then the far edges are
// verified. On any failure the corner is left unclaimed and falls through to
// line detection.
func (g *grid) traceBox(left, top int, cw, ch float64) *Box {
	right := g.scanEdgeRight(left, top)
	if right < 0 {
		return nil
	}
	bottom := g.scanEdgeDown(left, top)
	if bottom < 0 {
		return nil
	}
	br := g.at(right, bottom).class
	if g.isClaimed(right, bottom) || br.kind != kindJunction || !br.conn.up || !br.conn.left {
		return nil
	}
	for x := left + 1; x < right; x++ {
		c := g.at(x, bottom).class
		if g.isClaimed(x, bottom) || c.kind != kindLine || !c.horiz {
			return nil
		}
	}
	for y := top + 1; y < bottom; y++ {
		c := g.at(right, y).class
		if g.isClaimed(right, y) || c.kind != kindLine || !c.vert {
			return nil
		}
	}

	// Claim border and interior. Interior rows become the label, trailing
	// whitespace trimmed, leading whitespace preserved.
	var rows []string
	for y := top; y <= bottom; y++ {
		var row strings.Builder
		for x := left; x <= right; x++ {
			g.claim(x, y)
			if y > top && y < bottom && x > left && x < right {
				row.WriteRune(g.at(x, y).r)
			}
		}
		if y > top && y < bottom {
			rows = append(rows, strings.TrimRight(row.String(), " \t"))
		}
	}
	label := strings.TrimRight(strings.Join(rows, "\n"), "\n")

	bounds := Rect{
		X:      float64(left+1) * cw,
		Y:      float64(top+1) * ch,
		Width:  float64(right-left-1) * cw,
		Height: float64(bottom-top-1) * ch,
	}
	return &Box{
		bounds: bounds,
		label:  label,
		conns: [4]Connector{
			{Side: SideTop, X: bounds.X + bounds.Width/2, Y: bounds.Y},
			{Side: SideRight, X: bounds.X + bounds.Width, Y: bounds.Y + bounds.Height/2},
			{Side: SideBottom, X: bounds.X + bounds.Width/2, Y: bounds.Y + bounds.Height},
			{Side: SideLeft, X: bounds.X, Y: bounds.Y + bounds.Height/2},
		},
	}
}

// scanEdgeRight returns the column of the nearest junction right of the
// corner that can serve as a top-right corner, or -1 when the edge breaks
// first.
func (g *grid) scanEdgeRight(left, top int) int {
	for x := left + 1; x < g.cols; x++ {
		if g.isClaimed(x, top) {
			return -1
		}
		c := g.at(x, top).class
		if c.kind == kindJunction {
			if c.conn.left && c.conn.down {
				return x
			}
			return -1
		}
		if c.kind != kindLine || !c.horiz {
			return -1
		}
	}
	return -1
}

// scanEdgeDown is the vertical counterpart of scanEdgeRight.
func (g *grid) scanEdgeDown(left, top int) int {
	for y := top + 1; y < g.rows; y++ {
		if g.isClaimed(left, y) {
			return -1
		}
		c := g.at(left, y).class
		if c.kind == kindJunction {
			if c.conn.up && c.conn.right {
				return y
			}
			return -1
		}
		if c.kind != kindLine || !c.vert {
			return -1
		}
	}
	return -1
}

// findLines traces one line per maximal connected run of unclaimed path
// cells. A run of a single cell is discarded and unclaimed.
func (g *grid) findLines(cw, ch float64) []Shape {
	var out []Shape
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if g.isClaimed(x, y) || !g.at(x, y).class.isPath() {
				continue
			}
			path := g.traceLine(x, y)
			if len(path) < 2 {
				g.unclaim(x, y)
				continue
			}
			out = append(out, newLine(g, path, cw, ch))
		}
	}
	return out
}

type gridPoint struct {
	x, y int
}

var steps = [4]struct {
	dx, dy int
	dir    Direction
}{
	{1, 0, DirRight},
	{0, 1, DirDown},
	{-1, 0, DirLeft},
	{0, -1, DirUp},
}

func opposite(d Direction) Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	}
	return DirLeft
}

// traceLine walks from the start cell, always taking the first unclaimed
// connectable neighbor (right, down, left, up), claiming cells as it goes.
// Traces do not fork: the first walk through a T or X junction claims it and
// keeps going, and the severed branch is traced later as its own line. This
// keeps output stable for diagrams drawn against the historical behavior.
func (g *grid) traceLine(x, y int) []gridPoint {
	g.claim(x, y)
	path := []gridPoint{{x, y}}
	for {
		nxt, ok := g.step(path[len(path)-1])
		if !ok {
			return path
		}
		g.claim(nxt.x, nxt.y)
		path = append(path, nxt)
	}
}

// step returns the first neighbor the walk can move to. Both cells must
// carry a line toward each other.
func (g *grid) step(p gridPoint) (gridPoint, bool) {
	from := g.at(p.x, p.y).class
	for _, s := range steps {
		nx, ny := p.x+s.dx, p.y+s.dy
		if !g.inside(nx, ny) || g.isClaimed(nx, ny) {
			continue
		}
		to := g.at(nx, ny).class
		if !to.isPath() {
			continue
		}
		if !from.connects(s.dir) || !to.connects(opposite(s.dir)) {
			continue
		}
		return gridPoint{nx, ny}, true
	}
	return gridPoint{}, false
}

// newLine maps a traced path to pixel space: polyline points are cell
// centers with collinear runs collapsed, arrow cells become arrowheads.
func newLine(g *grid, path []gridPoint, cw, ch float64) *Line {
	l := &Line{}
	minX, minY := path[0].x, path[0].y
	maxX, maxY := minX, minY
	for _, p := range path {
		if c := g.at(p.x, p.y).class; c.kind == kindArrow {
			l.arrows = append(l.arrows, Arrowhead{
				X:   (float64(p.x) + 0.5) * cw,
				Y:   (float64(p.y) + 0.5) * ch,
				Dir: c.dir,
			})
		}
		minX, maxX = min(minX, p.x), max(maxX, p.x)
		minY, maxY = min(minY, p.y), max(maxY, p.y)
	}
	for _, p := range corners(path) {
		l.points = append(l.points, Point{
			X: (float64(p.x) + 0.5) * cw,
			Y: (float64(p.y) + 0.5) * ch,
		})
	}
	l.bounds = Rect{
		X:      (float64(minX) + 0.5) * cw,
		Y:      (float64(minY) + 0.5) * ch,
		Width:  float64(maxX-minX) * cw,
		Height: float64(maxY-minY) * ch,
	}
	return l
}

// corners drops collinear interior points, keeping only changes of
// direction. The path is contiguous and axis-aligned by construction.
func corners(path []gridPoint) []gridPoint {
	if len(path) < 3 {
		return path
	}
	out := []gridPoint{path[0]}
	for i := 1; i < len(path)-1; i++ {
		sameCol := path[i-1].x == path[i].x && path[i].x == path[i+1].x
		sameRow := path[i-1].y == path[i].y && path[i].y == path[i+1].y
		if !sameCol && !sameRow {
			out = append(out, path[i])
		}
	}
	return append(out, path[len(path)-1])
}

// findTexts emits one Text per maximal horizontal run of unclaimed text
// cells. Runs are horizontal only; multi-line blocks become one shape per
// row.
func (g *grid) findTexts(cw, ch float64) []Shape {
	var out []Shape
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if g.isClaimed(x, y) || !g.at(x, y).class.isTextual() {
				continue
			}
			out = append(out, g.scanText(x, y, cw, ch))
		}
	}
	return out
}

// scanText extends a run rightward, bridging gaps of up to two spaces so
// conventional labels like "foo bar" stay whole. The run stops at claimed
// cells, path cells, or a longer whitespace streak.
func (g *grid) scanText(x, y int, cw, ch float64) *Text {
	runes := []rune{g.at(x, y).r}
	streak := 0
	for cx := x + 1; cx < g.cols; cx++ {
		if g.isClaimed(cx, y) {
			break
		}
		c := g.at(cx, y)
		if c.class.isTextual() {
			streak = 0
		} else if c.class.kind == kindEmpty {
			streak++
			if streak > 2 {
				break
			}
		} else {
			break
		}
		runes = append(runes, c.r)
	}
	for len(runes) > 0 && unicode.IsSpace(runes[len(runes)-1]) {
		runes = runes[:len(runes)-1]
	}
	for i := range runes {
		g.claim(x+i, y)
	}
	return &Text{
		bounds: Rect{
			X:      float64(x) * cw,
			Y:      float64(y) * ch,
			Width:  float64(len(runes)) * cw,
			Height: ch,
		},
		content: string(runes),
	}
}
