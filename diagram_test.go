// Copyright 2026 The ASCIIDiagram Contributors
// All rights reserved.

package asciidiagram

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/maruel/ut"
)

func TestDefaults(t *testing.T) {
	t.Parallel()
	d := New(Options{})
	w, h := d.Size()
	ut.AssertEqual(t, DefaultBoxWidth+2*DefaultPadding, w)
	ut.AssertEqual(t, DefaultBoxHeight+2*DefaultPadding, h)
	root := d.Convert()
	ut.AssertEqual(t, "30", root.Attr("width"))
	ut.AssertEqual(t, "40", root.Attr("height"))
}

func TestCustomSize(t *testing.T) {
	t.Parallel()
	d := New(Options{Text: "ab\ncd", BoxWidth: 8, BoxHeight: 16, Padding: 4})
	w, h := d.Size()
	ut.AssertEqual(t, 24, w)
	ut.AssertEqual(t, 40, h)
}

func TestConvertMemoized(t *testing.T) {
	t.Parallel()
	d := New(Options{Text: "+--+\n|Hi|\n+--+"})
	ut.AssertEqual(t, true, d.Convert() == d.Convert())
}

func TestConvertDeterministic(t *testing.T) {
	t.Parallel()
	o := Options{Text: "A --> B\n+--+\n|Hi|\n+--+", Debug: true}
	ut.AssertEqual(t, New(o).String(), New(o).String())
}

// Conversion is total: malformed or hostile input renders something, never
// panics or errors.
func TestConvertTotal(t *testing.T) {
	t.Parallel()
	data := []string{
		"",
		"\n\n\n",
		"+",
		"+-",
		"+--+",
		"|||",
		"<>^v",
		"\x00\x00",
		"┌──┐\n│  │",
		strings.Repeat("+-", 100),
	}
	for i, input := range data {
		out := New(Options{Text: input}).String()
		ut.AssertEqualIndex(t, i, true, strings.HasPrefix(out, "<svg"))
	}
}

func TestDataURL(t *testing.T) {
	t.Parallel()
	d := New(Options{Text: "+--+\n|Hi|\n+--+"})
	u := d.DataURL()
	const prefix = "data:image/svg+xml;base64,"
	ut.AssertEqual(t, true, strings.HasPrefix(u, prefix))
	raw, err := base64.StdEncoding.DecodeString(u[len(prefix):])
	ut.AssertEqual(t, nil, err)
	ut.AssertEqual(t, d.String(), string(raw))
}

func TestShapesOrder(t *testing.T) {
	t.Parallel()
	d := New(Options{Text: "x --> y\n+--+\n|  |\n+--+"})
	shapes := d.Shapes()
	ut.AssertEqual(t, 4, len(shapes))
	_, ok := shapes[0].(*Box)
	ut.AssertEqual(t, true, ok)
	_, ok = shapes[1].(*Line)
	ut.AssertEqual(t, true, ok)
	_, ok = shapes[2].(*Text)
	ut.AssertEqual(t, true, ok)
}

func BenchmarkConvert(b *testing.B) {
	row := "+----+     +----+\n|serv| --> | db |\n+----+     +----+\n"
	input := strings.Repeat(row, 50)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if New(Options{Text: input}).Convert() == nil {
			b.Fatal("nil element")
		}
	}
}
