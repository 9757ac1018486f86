// Copyright 2026 The ASCIIDiagram Contributors
// All rights reserved.

package asciidiagram

import (
	"testing"

	"github.com/maruel/ut"
)

func TestClassify(t *testing.T) {
	t.Parallel()
	data := []struct {
		r rune
		k kind
	}{
		// 0 Whitespace
		{' ', kindEmpty},
		{'\t', kindEmpty},

		// 2 Plain text, including runes outside the table
		{'a', kindText},
		{'0', kindText},
		{'é', kindText},
		{'☃', kindText},
		{'╳', kindText},

		// 7 Lines
		{'-', kindLine},
		{'─', kindLine},
		{'═', kindLine},
		{'|', kindLine},
		{'│', kindLine},
		{'║', kindLine},

		// 13 Junctions
		{'+', kindJunction},
		{'┌', kindJunction},
		{'┐', kindJunction},
		{'└', kindJunction},
		{'┘', kindJunction},
		{'├', kindJunction},
		{'┤', kindJunction},
		{'┬', kindJunction},
		{'┴', kindJunction},
		{'┼', kindJunction},
		{'╭', kindJunction},

		// 24 Arrows
		{'>', kindArrow},
		{'<', kindArrow},
		{'^', kindArrow},
		{'v', kindArrow},
		{'▼', kindArrow},

		// 29 Brackets
		{'[', kindBox},
		{']', kindBox},
	}
	for i, line := range data {
		ut.AssertEqualIndex(t, i, line.k, classify(line.r).kind)
	}
}

func TestClassifyOrientation(t *testing.T) {
	t.Parallel()
	ut.AssertEqual(t, true, classify('-').horiz)
	ut.AssertEqual(t, false, classify('-').vert)
	ut.AssertEqual(t, false, classify('│').horiz)
	ut.AssertEqual(t, true, classify('│').vert)
	ut.AssertEqual(t, edges{right: true, down: true}, classify('┌').conn)
	ut.AssertEqual(t, edges{up: true, left: true}, classify('┘').conn)
	ut.AssertEqual(t, allEdges, classify('+').conn)
	ut.AssertEqual(t, DirRight, classify('>').dir)
	ut.AssertEqual(t, DirDown, classify('v').dir)
}

func TestConnects(t *testing.T) {
	t.Parallel()
	data := []struct {
		r        rune
		dir      Direction
		expected bool
	}{
		{'-', DirLeft, true},
		{'-', DirRight, true},
		{'-', DirUp, false},
		{'|', DirDown, true},
		{'|', DirLeft, false},
		{'+', DirUp, true},
		{'+', DirLeft, true},
		{'┌', DirRight, true},
		{'┌', DirUp, false},
		{'┌', DirLeft, false},
		{'>', DirLeft, true},
		{'>', DirRight, true},
		{'>', DirUp, false},
		{'v', DirUp, true},
		{'v', DirRight, false},
		{'a', DirRight, false},
		{' ', DirRight, false},
		{'[', DirRight, false},
	}
	for i, line := range data {
		ut.AssertEqualIndex(t, i, line.expected, classify(line.r).connects(line.dir))
	}
}
