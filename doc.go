// Copyright 2026 The ASCIIDiagram Contributors
// All rights reserved.

// Package asciidiagram converts ASCII art diagrams into SVG. It recognizes
// rectangular boxes, connected line paths with arrowheads, and free text, and
// renders them as vector primitives on a fixed character grid.
//
// The input is interpreted as a newline-delimited grid, one character per
// cell. Boxes are drawn with +, -, | or the Unicode box-drawing set; lines
// may carry <, >, ^ and v arrowheads. Any character the converter does not
// recognize is treated as plain text, so conversion never fails: malformed
// diagrams degrade to odd-looking output, not errors.
//
// Example usage:
//
//	d := asciidiagram.New(asciidiagram.Options{Text: "┌──┐\n│Hi│\n└──┘"})
//	svg := d.String()  // serialized <svg> markup
//	uri := d.DataURL() // data:image/svg+xml;base64,...
package asciidiagram
