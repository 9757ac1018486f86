// Copyright 2026 The ASCIIDiagram Contributors
// All rights reserved.

package cli

import (
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const logo = `┌──────┐      ┌─────┐
│ascii │ ---> │ svg │
└──────┘      └─────┘`

// Execute runs the a2svg CLI and returns an error if the command fails.
func Execute() error {
	var (
		input   string
		output  string
		style   string
		dataURL bool
		verbose bool
		flags   Style
	)

	root := &cobra.Command{
		Use:          "a2svg",
		Short:        "a2svg converts ASCII art diagrams to SVG",
		Long:         logo + "\n\na2svg recognizes boxes, lines, arrowheads and text in an ASCII diagram\nand renders them as an SVG document.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)

			s := Style{}
			if style != "" {
				var err error
				s, err = loadStyle(style)
				if err != nil {
					return fmt.Errorf("loading style %s: %w", style, err)
				}
				logger.Debug("Loaded style file", "path", style)
			}
			s.merge(cmd.Flags(), flags)
			s.checkColors(logger)

			text, err := readInput(input)
			if err != nil {
				return err
			}
			p := newProgress(logger)
			out := convert(s, string(text), dataURL, logger)
			if verbose {
				p.done("Converted diagram")
			}
			return writeOutput(output, []byte(out))
		},
	}

	fl := root.Flags()
	fl.StringVarP(&input, "input", "i", "-", `path to input text file, "-" for stdin`)
	fl.StringVarP(&output, "output", "o", "-", `path to output SVG file, "-" for stdout`)
	fl.StringVar(&style, "style", "", "path to a TOML style file")
	fl.BoolVar(&dataURL, "data-url", false, "emit a data:image/svg+xml URI instead of raw SVG")
	fl.BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	fl.IntVar(&flags.BoxWidth, "box-width", 0, "pixel width of one grid cell")
	fl.IntVar(&flags.BoxHeight, "box-height", 0, "pixel height of one grid cell")
	fl.StringVar(&flags.LineColor, "line-color", "", "stroke color for lines and box borders")
	fl.StringVar(&flags.TextColor, "text-color", "", "fill color for text")
	fl.StringVar(&flags.BoxColor, "box-color", "", "fill color for box interiors")
	fl.StringVar(&flags.FontFamily, "font-family", "", "font family for text")
	fl.IntVar(&flags.FontSize, "font-size", 0, "font size in px")
	fl.IntVar(&flags.Padding, "padding", 0, "outer margin in px")
	fl.BoolVar(&flags.Debug, "debug", false, "overlay the cell grid and source characters")

	return root.Execute()
}

// readInput reads the whole input file, with "-" meaning stdin.
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// writeOutput writes the result, with "-" meaning stdout.
func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o666)
}
