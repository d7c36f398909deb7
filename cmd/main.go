package main

// Entry point: runs the cobra command tree and exits non-zero on error.

import (
	"fmt"
	"os"

	"supply-chain-insights/cmd/commands"
	"supply-chain-insights/internal/infra/log"
)

func main() {
	err := commands.Execute()
	log.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
