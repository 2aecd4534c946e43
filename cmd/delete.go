package cmd

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"ticklist/models"
)

var deleteForce bool

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:     "delete [task_id]",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Long: `Delete a task by its ID (full ID or unambiguous prefix). If no ID is
provided, an interactive list is shown. A confirmation prompt is displayed
before deletion unless --force is used.`,
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
				cmd.Printf("No task matches %q; nothing deleted.\n", args[0])
				return nil
			}
			target = found
		} else {
			target, err = selectTaskInteractive(s, models.FilterAll, "Select task to delete")
			if err != nil {
				if err == promptui.ErrInterrupt {
					cmd.Println("Deletion cancelled.")
					return nil
				}
				if err == ErrNoTasksFound {
					cmd.Println("No tasks available to delete.")
					return nil
				}
				return fmt.Errorf("task selection failed: %w", err)
			}
		}

		if !deleteForce {
			confirm := promptui.Prompt{
				Label:     fmt.Sprintf("Delete task %q", target.Text),
				IsConfirm: true,
			}
			if _, err := confirm.Run(); err != nil {
				if err == promptui.ErrAbort || err == promptui.ErrInterrupt {
					cmd.Println("Deletion cancelled.")
					return nil
				}
				return fmt.Errorf("confirmation prompt failed: %w", err)
			}
		}

		removed, err := s.Delete(target.ID)
		if err != nil {
			PrintError("Warning: task deleted but the change could not be saved.", err)
		}
		if removed {
			cmd.Printf("Deleted %q.\n", target.Text)
		} else {
			cmd.Printf("No task matches %q; nothing deleted.\n", target.ID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "skip confirmation prompt")
}
