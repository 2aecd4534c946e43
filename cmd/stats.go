package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ticklist/internal/ui"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task counts",
	Long:  `Show how many tasks exist in total and how many are pending and completed.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := GetStore()
		if err != nil {
			return fmt.Errorf("could not initialize the task store: %w", err)
		}
		defer func() { _ = s.Close() }()

		st := s.Stats()
		if isJSON() {
			return printJSON(cmd, st)
		}
		cmd.Println(ui.RenderStats(st))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
