package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ticklist/internal/ui"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a task to the list",
	Long: `Add a new task with the given text. The text is trimmed; adding blank
text does nothing. New tasks go to the top of the list.

Examples:
  ticklist add "Buy milk"
  ticklist add Water the plants`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := GetStore()
		if err != nil {
			return fmt.Errorf("could not initialize the task store: %w", err)
		}
		defer func() { _ = s.Close() }()

		task, err := s.Add(strings.Join(args, " "))
		if err != nil {
			PrintError("Warning: task added but could not be saved.", err)
			return nil
		}
		if task == nil {
			cmd.Println("Nothing to add: task text is empty.")
			return nil
		}

		if isJSON() {
			return printJSON(cmd, task)
		}
		cmd.Printf("Added %q (ID: %s)\n", task.Text, ui.ShortID(task.ID))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
