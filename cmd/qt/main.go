package main

import (
	"fmt"
	"os"

	"quest-tracker/internal/cli"
	"quest-tracker/internal/logging"
)

func main() {
	// Replaced by the configured logger once flags and config are resolved
	logging.Setup("info", "text")

	root := cli.NewRootCommand(cli.DefaultServiceFactory)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
