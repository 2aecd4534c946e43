package cmd

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"ticklist/models"
)

// toggleCmd represents the toggle command
var toggleCmd = &cobra.Command{
	Use:     "toggle [task_id]",
	Aliases: []string{"done", "t"},
	Short:   "Toggle a task between pending and completed",
	Long: `Flip the completion flag of a task. A completed task becomes pending
again and vice versa. If task_id is provided (full ID or unambiguous prefix),
that task is toggled directly; otherwise an interactive list is shown.`,
	Example: `  # Interactive mode
  ticklist toggle

  # Toggle a specific task by ID prefix
  ticklist toggle 6a1f1c2d`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := GetStore()
		if err != nil {
			return fmt.Errorf("could not initialize the task store: %w", err)
		}
		defer func() { _ = s.Close() }()

		var target models.Task
		if len(args) > 0 {
			found, ok := s.Find(args[0])
			if !ok {
				cmd.Printf("No task matches %q; nothing toggled.\n", args[0])
				return nil
			}
			target = found
		} else {
			target, err = selectTaskInteractive(s, models.FilterAll, "Select task to toggle")
			if err != nil {
				if err == promptui.ErrInterrupt {
					cmd.Println("Operation cancelled.")
					return nil
				}
				if err == ErrNoTasksFound {
					cmd.Println("No tasks available to toggle.")
					return nil
				}
				return fmt.Errorf("could not select a task: %w", err)
			}
		}

		task, err := s.Toggle(target.ID)
		if err != nil {
			PrintError("Warning: task toggled but could not be saved.", err)
		}
		if task == nil {
			cmd.Printf("No task matches %q; nothing toggled.\n", target.ID)
			return nil
		}

		if isJSON() {
			return printJSON(cmd, task)
		}
		state := "pending"
		if task.Completed {
			state = "completed"
		}
		cmd.Printf("Task %q is now %s.\n", task.Text, state)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}
