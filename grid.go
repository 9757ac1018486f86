// Copyright 2026 The ASCIIDiagram Contributors
// All rights reserved.

package asciidiagram

import (
	"strings"
	"unicode/utf8"
)

// cell is one character position in the parsed diagram.
type cell struct {
	class cellClass
	r     rune
}

// grid is the parsed source data. (0,0) is top left. Cells live in a flat
// row-major slice with a parallel claimed mask; a cell claimed by one shape
// is excluded from every later pass.
type grid struct {
	cells   []cell
	claimed []bool
	cols    int
	rows    int
}

// parseGrid splits the input on newlines and classifies every character.
// Short lines are padded with spaces so the grid is rectangular. Empty input
// parses to a 1x1 grid holding a single empty cell, so dimensions are always
// positive and the renderer never special-cases zero.
func parseGrid(text string) *grid {
	lines := strings.Split(text, "\n")
	cols := 1
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > cols {
			cols = n
		}
	}
	g := &grid{
		cells:   make([]cell, cols*len(lines)),
		claimed: make([]bool, cols*len(lines)),
		cols:    cols,
		rows:    len(lines),
	}
	for y, l := range lines {
		x := 0
		for _, r := range l {
			g.cells[y*cols+x] = cell{class: classify(r), r: r}
			x++
		}
		for ; x < cols; x++ {
			g.cells[y*cols+x] = cell{class: cellClass{kind: kindEmpty}, r: ' '}
		}
	}
	return g
}

func (g *grid) at(x, y int) cell {
	return g.cells[y*g.cols+x]
}

func (g *grid) inside(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

func (g *grid) isClaimed(x, y int) bool {
	return g.claimed[y*g.cols+x]
}

func (g *grid) claim(x, y int) {
	g.claimed[y*g.cols+x] = true
}

func (g *grid) unclaim(x, y int) {
	g.claimed[y*g.cols+x] = false
}
