// Copyright 2026 The ASCIIDiagram Contributors
// All rights reserved.

package asciidiagram

import (
	"testing"

	"github.com/maruel/ut"
)

func TestParseColor(t *testing.T) {
	t.Parallel()
	data := []struct {
		color   string
		r, g, b int
		ok      bool
	}{
		// 0 Short form expands each nibble.
		{"#fff", 255, 255, 255, true},
		{"#18f", 17, 136, 255, true},
		// 2 Long form.
		{"#000000", 0, 0, 0, true},
		{"#123abc", 18, 58, 188, true},
		// 4 Rejects.
		{"", 0, 0, 0, false},
		{"red", 0, 0, 0, false},
		{"#12345", 0, 0, 0, false},
		{"#xyz", 0, 0, 0, false},
	}
	for i, line := range data {
		r, g, b, err := ParseColor(line.color)
		ut.AssertEqualIndex(t, i, line.ok, err == nil)
		if err != nil {
			continue
		}
		ut.AssertEqualIndex(t, i, line.r, r)
		ut.AssertEqualIndex(t, i, line.g, g)
		ut.AssertEqualIndex(t, i, line.b, b)
	}
}

func TestLabelColor(t *testing.T) {
	t.Parallel()
	data := []struct {
		background string
		expected   string
	}{
		{"#000000", "#ffffff"},
		{"#ffffff", "#000000"},
		{"#f8f9fa", "#000000"},
		// 3 Pure red is dark enough for white text.
		{"#ff0000", "#ffffff"},
		{"#ffff00", "#000000"},
		// 5 Unparseable backgrounds keep the default.
		{"cornflowerblue", "#000000"},
	}
	for i, line := range data {
		ut.AssertEqualIndex(t, i, line.expected, labelColor(line.background))
	}
}
