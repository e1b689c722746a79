package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacksmith/taskd/internal/storage"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create an empty task database",
	Long: `Create a task database file containing an empty JSON array.

Defaults to tasks.json in the current directory. Fails if the file
already exists.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := storage.DefaultPath
	if len(args) > 0 {
		path = args[0]
	}

	if err := storage.Init(path); err != nil {
		return err
	}

	fmt.Printf("Initialized empty task database at %s\n", path)
	return nil
}
