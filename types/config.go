package types

// AppConfig is the unified application configuration, populated by viper from
// the config file, environment, and flag defaults.
type AppConfig struct {
	Verbose bool `mapstructure:"verbose"`
	JSON    bool `mapstructure:"json"`
	// Strict restores the propagate-and-abort behavior when the stored task
	// state cannot be decoded; the default is to warn and start empty.
	Strict  bool          `mapstructure:"strict"`
	Project ProjectConfig `mapstructure:"project"`
	Data    DataConfig    `mapstructure:"data"`
	Storage StorageConfig `mapstructure:"storage"`
}

// ProjectConfig locates the application's data directory.
type ProjectConfig struct {
	RootDir string `mapstructure:"rootDir" validate:"required"`
}

// DataConfig describes the task slot on disk.
type DataConfig struct {
	File       string `mapstructure:"file" validate:"required"`
	Format     string `mapstructure:"format" validate:"required,oneof=json yaml"`
	SQLiteFile string `mapstructure:"sqliteFile" validate:"required"`
}

// StorageConfig selects the repository backend.
type StorageConfig struct {
	Backend string `mapstructure:"backend" validate:"required,oneof=file sqlite"`
}
