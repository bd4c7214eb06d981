// Package main - Entry point for the contractor-quote CLI
package main

import (
	"os"

	"contractor-quote/cmd/cli/cmd"
	"contractor-quote/internal/logging"
)

func main() {
	defer logging.Sync()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
