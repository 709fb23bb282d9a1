// Package main is the entry point for the scry CLI tool.
package main

import (
	"os"

	"github.com/scrycli/scry/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
