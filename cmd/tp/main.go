package main

import (
	"fmt"
	"os"

	"task-planner/internal/cli"
	"task-planner/internal/config"
)

func main() {
	// Read configuration: defaults, config file, .env, environment.
	// Validation happens in the root command once flags are applied.
	cfg, err := config.NewLoader().Read()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Flags are applied and the store opened by the root command
	root := cli.NewRootCommand(cfg, cli.OpenPlanner, os.Stdin, os.Stdout)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
