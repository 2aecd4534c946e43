package cmd

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"ticklist/models"
)

var clearForce bool

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all completed tasks",
	Long: `Remove every completed task from the list, keeping pending tasks in
their current order. Asks for confirmation unless --force is used.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := GetStore()
		if err != nil {
			return fmt.Errorf("could not initialize the task store: %w", err)
		}
		defer func() { _ = s.Close() }()

		completed := s.View(models.FilterCompleted)
		if len(completed) > 0 && !clearForce {
			confirm := promptui.Prompt{
				Label:     fmt.Sprintf("Clear %d completed task(s) permanently", len(completed)),
				IsConfirm: true,
			}
			if _, err := confirm.Run(); err != nil {
				if err == promptui.ErrAbort || err == promptui.ErrInterrupt {
					cmd.Println("Clear cancelled.")
					return nil
				}
				return fmt.Errorf("confirmation prompt failed: %w", err)
			}
		}

		removed, err := s.ClearCompleted()
		if err != nil {
			PrintError("Warning: tasks cleared but the change could not be saved.", err)
		}

		if removed == 0 {
			cmd.Println("No completed tasks to clear.")
			return nil
		}
		cmd.Printf("Cleared %d completed task(s).\n", removed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVarP(&clearForce, "force", "f", false, "skip confirmation prompt")
}
