// Package main provides the CLI for the zfdash restaurant dataset explorer.
package main

import (
	"os"

	"github.com/leapstack-labs/zfdash/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
