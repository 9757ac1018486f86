// Copyright 2026 The ASCIIDiagram Contributors
// All rights reserved.

package main

import (
	"os"

	"github.com/david3xu/asciidiagram/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
