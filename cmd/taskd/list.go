package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacksmith/taskd/internal/cli"
	"github.com/jacksmith/taskd/internal/ops"
	"github.com/jacksmith/taskd/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks in the database",
	Long: `Print the task database as a table.

Titles are truncated to fit the terminal width. Status is colored when
stdout is a terminal.`,
	RunE: runList,
}

var listDB string

func init() {
	listCmd.Flags().StringVar(&listDB, "db", storage.DefaultPath, "path to the task database file")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	store := storage.NewFileStore(listDB)
	tasks, err := ops.ListTasks(store)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks.")
		return nil
	}

	// Leave room for the id, status, priority, and due-date columns.
	width := cli.TermWidth(os.Stdout, 100)
	titleWidth := width - 45
	if titleWidth < 20 {
		titleWidth = 20
	}

	table := cli.NewTable()
	table.SetMaxWidth(1, titleWidth)
	table.SetColor(2, cli.StatusColor)
	for _, t := range tasks {
		table.AddRow(t.ID, t.Title, t.Status, t.Priority, t.DueDate)
	}
	table.Render(os.Stdout)

	return nil
}
