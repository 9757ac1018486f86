// Copyright 2026 The ASCIIDiagram Contributors
// All rights reserved.

package asciidiagram

import (
	"fmt"
	"strconv"
)

func parseHexColor(c string) (r, g, b int, err error) {
	var pr, pg, pb int64

	switch len(c) {
	case 4:
		pr, err = strconv.ParseInt(string(c[1]), 16, 0)
		if err != nil {
			return 0, 0, 0, err
		}

		pg, err = strconv.ParseInt(string(c[2]), 16, 0)
		if err != nil {
			return 0, 0, 0, err
		}

		pb, err = strconv.ParseInt(string(c[3]), 16, 0)
		if err != nil {
			return 0, 0, 0, err
		}

		pr *= 17
		pg *= 17
		pb *= 17
	case 7:
		pr, err = strconv.ParseInt(string(c[1:3]), 16, 0)
		if err != nil {
			return 0, 0, 0, err
		}

		pg, err = strconv.ParseInt(string(c[3:5]), 16, 0)
		if err != nil {
			return 0, 0, 0, err
		}

		pb, err = strconv.ParseInt(string(c[5:7]), 16, 0)
		if err != nil {
			return 0, 0, 0, err
		}

	default:
		return 0, 0, 0, fmt.Errorf("color '%s' not of valid length", c)
	}

	return int(pr), int(pg), int(pb), nil
}

// ParseColor matches a #RGB or #RRGGBB color string and returns its RGB
// components.
func ParseColor(c string) (r, g, b int, err error) {
	if len(c) > 0 && c[0] == '#' {
		return parseHexColor(c)
	}

	return 0, 0, 0, fmt.Errorf("color '%s' can't be parsed", c)
}

// labelColor returns an accessible text color to use on top of a supplied
// background color. The formula for whether the contrast is accessible comes
// from the W3 working group paper on accessibility at
// http://www.w3.org/TR/AERT: a brightness difference of at least 125 and a
// color difference of at least 500 against the default black text.
func labelColor(background string) string {
	r, g, b, err := ParseColor(background)
	if err != nil {
		return "#000000"
	}

	brightness := (r*299 + g*587 + b*114) / 1000
	difference := r + g + b
	if brightness < 125 && difference < 500 {
		return "#ffffff"
	}

	return "#000000"
}
