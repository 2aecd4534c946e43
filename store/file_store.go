package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	yaml "gopkg.in/yaml.v3"

	"ticklist/models"
)

const (
	defaultDataFile = "tasks.json"
	formatJSON      = "json"
	formatYAML      = "yaml"
)

// FileRepository implements Repository on a single file. It supports JSON and
// YAML encodings of the task array and writes through a temp file plus rename
// so a crashed save never leaves a half-written slot behind.
//
// The filesystem is abstracted through afero so tests can run against an
// in-memory backend. There is no cross-process locking: two concurrent
// instances race last-writer-wins, which is the documented storage model.
type FileRepository struct {
	fs       afero.Fs
	filePath string
	format   string
}

// NewFileRepository creates a repository over the given filesystem and path.
// Supported formats are "json" (default) and "yaml".
func NewFileRepository(fsys afero.Fs, path, format string) (*FileRepository, error) {
	if path == "" {
		path = defaultDataFile
	}
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "":
		format = formatJSON
	case formatJSON, formatYAML:
	default:
		return nil, fmt.Errorf("unsupported data format: %s. Supported formats are json, yaml", format)
	}
	return &FileRepository{fs: fsys, filePath: path, format: format}, nil
}

// Path returns the location of the slot, mainly for messages and file watching.
func (r *FileRepository) Path() string { return r.filePath }

// Load reads the stored collection. A missing or empty file is an empty
// collection, not an error.
func (r *FileRepository) Load() ([]models.Task, error) {
	data, err := afero.ReadFile(r.fs, r.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Task{}, nil
		}
		return nil, fmt.Errorf("failed to read data file %s: %w", r.filePath, err)
	}
	if len(data) == 0 {
		return []models.Task{}, nil
	}

	var tasks []models.Task
	switch r.format {
	case formatJSON:
		err = json.Unmarshal(data, &tasks)
	case formatYAML:
		err = yaml.Unmarshal(data, &tasks)
	}
	if err != nil {
		return nil, &MalformedStateError{Path: r.filePath, Err: err}
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

// Save overwrites the slot with the serialized collection. The array order on
// disk equals the in-memory order.
func (r *FileRepository) Save(tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}

	var data []byte
	var err error
	switch r.format {
	case formatJSON:
		data, err = json.MarshalIndent(tasks, "", "  ")
	case formatYAML:
		data, err = yaml.Marshal(tasks)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal tasks to %s: %w", r.format, err)
	}

	dir := filepath.Dir(r.filePath)
	if dir != "." && dir != "" {
		if err := r.fs.MkdirAll(dir, 0o755); err != nil {
			return &StorageUnavailableError{Path: r.filePath, Err: err}
		}
	}

	tempPath := r.filePath + ".tmp"
	if err := afero.WriteFile(r.fs, tempPath, data, 0o644); err != nil {
		return &StorageUnavailableError{Path: r.filePath, Err: err}
	}
	if err := r.fs.Rename(tempPath, r.filePath); err != nil {
		_ = r.fs.Remove(tempPath)
		return &StorageUnavailableError{Path: r.filePath, Err: err}
	}
	return nil
}

// Close is a no-op for the file backend.
func (r *FileRepository) Close() error { return nil }
