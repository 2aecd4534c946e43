package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ticklist/internal/ui"
	"ticklist/models"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list [all|pending|completed]",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long: `List tasks in insertion order, newest first.

Without arguments, lists every task. With a filter argument, shows only the
matching slice of the list. The filter only affects what is displayed; it is
never stored.

Examples:
  ticklist list            # All tasks
  ticklist list pending    # Only unfinished tasks
  ticklist list completed  # Only finished tasks`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filterArg := ""
		if len(args) > 0 {
			filterArg = args[0]
		}
		filter, err := models.ParseFilter(filterArg)
		if err != nil {
			return err
		}

		s, err := GetStore()
		if err != nil {
			return fmt.Errorf("could not initialize the task store: %w", err)
		}
		defer func() { _ = s.Close() }()

		s.SetFilter(filter)
		tasks := s.Selected()

		if isJSON() {
			return printJSON(cmd, tasks)
		}

		if len(tasks) == 0 {
			if filter == models.FilterAll {
				cmd.Println("No tasks yet.")
				cmd.Println(`Add one with: ticklist add "Your task here"`)
			} else {
				cmd.Printf("No %s tasks.\n", filter)
			}
			return nil
		}

		ui.RenderTaskList(cmd.OutOrStdout(), tasks, filter, s.Stats())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
