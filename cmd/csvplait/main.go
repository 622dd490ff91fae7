// Package main is the entry point for the csvplait CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/csvplait/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
