package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"ticklist/internal/ui"
	"ticklist/store"
)

// boardCmd represents the board command
var boardCmd = &cobra.Command{
	Use:     "board",
	Aliases: []string{"ui"},
	Short:   "Open the interactive task board",
	Long: `Open a full-screen interactive board. Navigate with the arrow keys,
toggle with space, add with a, delete with d, clear completed with c, and
cycle the view filter with f.

With the file backend the board also watches the task file and reloads the
list when another process changes it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		repo, err := NewRepository(cfg, afero.NewOsFs())
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}

		s, err := OpenStore(repo, cfg.Strict)
		if err != nil {
			return fmt.Errorf("could not initialize the task store: %w", err)
		}
		defer func() { _ = s.Close() }()

		// Live reload only works for the file backend.
		watchPath := ""
		if fileRepo, ok := repo.(*store.FileRepository); ok {
			watchPath = fileRepo.Path()
		}

		return ui.RunBoard(s, watchPath)
	},
}

func init() {
	rootCmd.AddCommand(boardCmd)
}
