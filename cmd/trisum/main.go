// Package main provides the trisum command.
package main

import (
	"os"

	"github.com/katalvlaran/trisum/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
