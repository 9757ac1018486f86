// Copyright 2026 The ASCIIDiagram Contributors
// All rights reserved.

package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/david3xu/asciidiagram"
)

// Style holds the rendering options of a diagram as loadable from a TOML
// file. Zero-valued fields fall back to the library defaults.
type Style struct {
	BoxWidth   int    `toml:"box_width"`
	BoxHeight  int    `toml:"box_height"`
	LineColor  string `toml:"line_color"`
	TextColor  string `toml:"text_color"`
	BoxColor   string `toml:"box_color"`
	FontFamily string `toml:"font_family"`
	FontSize   int    `toml:"font_size"`
	Padding    int    `toml:"padding"`
	Debug      bool   `toml:"debug"`
}

// loadStyle reads a style from a TOML file. Unknown keys are rejected so
// typos surface instead of silently falling back to defaults.
func loadStyle(path string) (Style, error) {
	var s Style
	meta, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Style{}, err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Style{}, fmt.Errorf("unknown style key %q", undecoded[0].String())
	}
	return s, nil
}

// merge overlays the values of explicitly set flags on top of s. Flag names
// are the snake_case TOML keys with dashes.
func (s *Style) merge(fl *pflag.FlagSet, flags Style) {
	if fl.Changed("box-width") {
		s.BoxWidth = flags.BoxWidth
	}
	if fl.Changed("box-height") {
		s.BoxHeight = flags.BoxHeight
	}
	if fl.Changed("line-color") {
		s.LineColor = flags.LineColor
	}
	if fl.Changed("text-color") {
		s.TextColor = flags.TextColor
	}
	if fl.Changed("box-color") {
		s.BoxColor = flags.BoxColor
	}
	if fl.Changed("font-family") {
		s.FontFamily = flags.FontFamily
	}
	if fl.Changed("font-size") {
		s.FontSize = flags.FontSize
	}
	if fl.Changed("padding") {
		s.Padding = flags.Padding
	}
	if fl.Changed("debug") {
		s.Debug = flags.Debug
	}
}

// checkColors warns about colors the contrast heuristic cannot parse. They
// still pass through to the SVG untouched; browsers may understand more
// formats than #RGB/#RRGGBB.
func (s Style) checkColors(logger *log.Logger) {
	colors := []struct{ name, value string }{
		{"line_color", s.LineColor},
		{"text_color", s.TextColor},
		{"box_color", s.BoxColor},
	}
	for _, c := range colors {
		if c.value == "" {
			continue
		}
		if _, _, _, err := asciidiagram.ParseColor(c.value); err != nil {
			logger.Warn("Color is not #RGB/#RRGGBB; passing through as-is",
				"option", c.name, "value", c.value)
		}
	}
}

// options translates the style into library options for the given text.
func (s Style) options(text string) asciidiagram.Options {
	return asciidiagram.Options{
		Text:       text,
		BoxWidth:   s.BoxWidth,
		BoxHeight:  s.BoxHeight,
		LineColor:  s.LineColor,
		TextColor:  s.TextColor,
		BoxColor:   s.BoxColor,
		FontFamily: s.FontFamily,
		FontSize:   s.FontSize,
		Padding:    s.Padding,
		Debug:      s.Debug,
	}
}
