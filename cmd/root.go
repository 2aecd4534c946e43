package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ticklist/models"
	"ticklist/store"
	"ticklist/tasklist"
	"ticklist/types"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// jsonOutput switches command output to machine-readable JSON.
	jsonOutput bool
	// ErrNoTasksFound is returned when an interactive selection is attempted but no tasks are available.
	ErrNoTasksFound = errors.New("no tasks found matching your criteria")
	// version is the application version.
	version = "0.1.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "ticklist",
	Version: version,
	Short:   "ticklist keeps your task list in your terminal.",
	Long: `ticklist is a small task list for the command line.
Add short text items, toggle them complete, delete them, and filter the list
by completion state. The list is persisted between sessions.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.ticklist/.ticklist.yaml or $HOME/.ticklist.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output machine-readable JSON where supported")
	rootCmd.PersistentFlags().Bool("strict", false, "fail instead of resetting when stored state is malformed")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("strict", rootCmd.PersistentFlags().Lookup("strict"))
}

func isVerbose() bool { return viper.GetBool("verbose") }
func isJSON() bool    { return viper.GetBool("json") }

// TaskFilePath returns the full path to the task file for the file backend.
func TaskFilePath(cfg types.AppConfig) string {
	return filepath.Join(cfg.Project.RootDir, cfg.Data.File)
}

// NewRepository builds the persistence adapter selected by the configuration.
func NewRepository(cfg types.AppConfig, fsys afero.Fs) (store.Repository, error) {
	switch cfg.Storage.Backend {
	case "sqlite":
		dbPath := filepath.Join(cfg.Project.RootDir, cfg.Data.SQLiteFile)
		if err := fsys.MkdirAll(cfg.Project.RootDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory %s: %w", cfg.Project.RootDir, err)
		}
		return store.NewSQLiteRepository(dbPath)
	case "file":
		return store.NewFileRepository(fsys, TaskFilePath(cfg), cfg.Data.Format)
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.Storage.Backend)
	}
}

// OpenStore loads the task store from the repository. When the stored state
// is malformed it warns and starts from an empty collection, leaving the bad
// slot on disk until the next successful mutation; --strict propagates the
// error instead.
func OpenStore(repo store.Repository, strict bool) (*tasklist.Store, error) {
	s, err := tasklist.Load(repo)
	if err == nil {
		return s, nil
	}

	var malformed *store.MalformedStateError
	if !strict && errors.As(err, &malformed) {
		PrintError("Warning: stored task state is unreadable; starting with an empty list.", err)
		return tasklist.New(repo), nil
	}
	return nil, err
}

// GetStore initializes the repository from configuration and loads the task store.
func GetStore() (*tasklist.Store, error) {
	cfg := GetConfig()
	repo, err := NewRepository(cfg, afero.NewOsFs())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	return OpenStore(repo, cfg.Strict)
}

// selectTaskInteractive presents a prompt to the user to select a task from
// the filtered view.
func selectTaskInteractive(s *tasklist.Store, filter models.Filter, label string) (models.Task, error) {
	tasks := s.View(filter)
	if len(tasks) == 0 {
		return models.Task{}, ErrNoTasksFound
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   `> {{ .Text | cyan }} ({{ if .Completed }}completed{{ else }}pending{{ end }})`,
		Inactive: `  {{ .Text | faint }} ({{ if .Completed }}completed{{ else }}pending{{ end }})`,
		Selected: `{{ "✔" | green }} {{ .Text | faint }}`,
	}

	searcher := func(input string, index int) bool {
		task := tasks[index]
		return strings.Contains(strings.ToLower(task.Text), strings.ToLower(input)) ||
			strings.Contains(task.ID, input)
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     tasks,
		Templates: templates,
		Searcher:  searcher,
	}

	i, _, err := prompt.Run()
	if err != nil {
		return models.Task{}, err // includes promptui.ErrInterrupt
	}
	return tasks[i], nil
}
