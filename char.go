// Copyright 2026 The ASCIIDiagram Contributors
// All rights reserved.

package asciidiagram

import "unicode"

// kind is the semantic classification of one grid cell. Every cell gets
// exactly one kind.
type kind int

const (
	kindEmpty kind = iota
	kindText
	kindLine
	kindJunction
	kindBox // bracket characters, kept so [tags] survive as text
	kindArrow
)

// Direction orients an arrowhead.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}

// edges records which sides of a junction cell connect to a neighbor.
type edges struct {
	up, right, down, left bool
}

var allEdges = edges{up: true, right: true, down: true, left: true}

// cellClass is one entry of the character classification table.
type cellClass struct {
	kind  kind
	horiz bool      // line orientation
	vert  bool      //
	conn  edges     // junction connectivity
	dir   Direction // arrowhead direction
}

func line(horiz, vert bool) cellClass { return cellClass{kind: kindLine, horiz: horiz, vert: vert} }
func junction(e edges) cellClass      { return cellClass{kind: kindJunction, conn: e} }
func arrow(d Direction) cellClass     { return cellClass{kind: kindArrow, dir: d} }

// charClasses maps every special character to its classification. The table
// is built once at init and never mutated.
var charClasses = map[rune]cellClass{
	'-': line(true, false),
	'─': line(true, false),
	'═': line(true, false),
	'|': line(false, true),
	'│': line(false, true),
	'║': line(false, true),

	'+': junction(allEdges),
	'┼': junction(allEdges),
	'┌': junction(edges{right: true, down: true}),
	'╭': junction(edges{right: true, down: true}),
	'┐': junction(edges{left: true, down: true}),
	'╮': junction(edges{left: true, down: true}),
	'└': junction(edges{up: true, right: true}),
	'╰': junction(edges{up: true, right: true}),
	'┘': junction(edges{up: true, left: true}),
	'╯': junction(edges{up: true, left: true}),
	'├': junction(edges{up: true, down: true, right: true}),
	'┤': junction(edges{up: true, down: true, left: true}),
	'┬': junction(edges{left: true, right: true, down: true}),
	'┴': junction(edges{left: true, right: true, up: true}),

	'^': arrow(DirUp),
	'▲': arrow(DirUp),
	'v': arrow(DirDown),
	'▼': arrow(DirDown),
	'<': arrow(DirLeft),
	'◄': arrow(DirLeft),
	'>': arrow(DirRight),
	'►': arrow(DirRight),

	'[': {kind: kindBox},
	']': {kind: kindBox},
}

// classify is total: spaces are empty, table entries get their class, and
// everything else degrades to text.
func classify(r rune) cellClass {
	if c, ok := charClasses[r]; ok {
		return c
	}
	if r == 0 || unicode.IsSpace(r) {
		return cellClass{kind: kindEmpty}
	}
	return cellClass{kind: kindText}
}

// connects reports whether a cell of this class carries a line toward d.
// Lines connect along their axis, junctions along their open edges, and
// arrowheads along the axis they point on.
func (c cellClass) connects(d Direction) bool {
	switch c.kind {
	case kindLine:
		if d == DirLeft || d == DirRight {
			return c.horiz
		}
		return c.vert
	case kindJunction:
		switch d {
		case DirUp:
			return c.conn.up
		case DirRight:
			return c.conn.right
		case DirDown:
			return c.conn.down
		case DirLeft:
			return c.conn.left
		}
	case kindArrow:
		if d == DirLeft || d == DirRight {
			return c.dir == DirLeft || c.dir == DirRight
		}
		return c.dir == DirUp || c.dir == DirDown
	}
	return false
}

// isPath reports whether this class can be part of a traced line.
func (c cellClass) isPath() bool {
	return c.kind == kindLine || c.kind == kindJunction || c.kind == kindArrow
}

// isTextual reports whether this class can join a text run. Brackets count so
// labels like [db] stay readable.
func (c cellClass) isTextual() bool {
	return c.kind == kindText || c.kind == kindBox
}
