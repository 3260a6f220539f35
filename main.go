// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Rankscope.
//
// Usage:
//
//	go run . [flags] [file]
//	./rankscope [flags] [file]
//
// This loads the dataset, prints its diagnostics and shows both charts.
// See --help for subcommands and options.
package main

import (
	"os"

	"github.com/toeirei/rankscope/internal/logging"
	"github.com/toeirei/rankscope/ui/cli"
)

// main is the entrypoint for the Rankscope CLI.
func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
