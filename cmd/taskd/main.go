// Package main is the entry point for the taskd server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "taskd",
	Short: "taskd - a task manager served over HTTP from a flat JSON file",
	Long: `taskd serves a small task-management API backed by a single JSON
file. Tasks are created, listed, and deleted through the API; the whole
collection is read and rewritten on every change.

Use "taskd init" to create an empty database, "taskd serve" to run the
API, and "taskd list" to inspect the database from the terminal.`,
	Version: Version,
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("taskd version {{.Version}}\n")
}
