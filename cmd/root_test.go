package cmd

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"ticklist/models"
	"ticklist/store"
	"ticklist/types"
)

func testConfig() types.AppConfig {
	return types.AppConfig{
		Project: types.ProjectConfig{RootDir: ".ticklist"},
		Data:    types.DataConfig{File: "tasks.json", Format: "json", SQLiteFile: "tasks.db"},
		Storage: types.StorageConfig{Backend: "file"},
	}
}

func TestTaskFilePath(t *testing.T) {
	cfg := testConfig()
	want := filepath.Join(".ticklist", "tasks.json")
	if got := TaskFilePath(cfg); got != want {
		t.Errorf("TaskFilePath = %q, want %q", got, want)
	}
}

func TestNewRepositorySelectsBackend(t *testing.T) {
	cfg := testConfig()

	repo, err := NewRepository(cfg, afero.NewMemMapFs())
	if err != nil {
		t.Fatalf("NewRepository(file) failed: %v", err)
	}
	if _, ok := repo.(*store.FileRepository); !ok {
		t.Errorf("Expected *store.FileRepository, got %T", repo)
	}

	cfg.Storage.Backend = "sqlite"
	cfg.Project.RootDir = t.TempDir()
	repo, err = NewRepository(cfg, afero.NewOsFs())
	if err != nil {
		t.Fatalf("NewRepository(sqlite) failed: %v", err)
	}
	defer func() { _ = repo.Close() }()
	if _, ok := repo.(*store.SQLiteRepository); !ok {
		t.Errorf("Expected *store.SQLiteRepository, got %T", repo)
	}

	cfg.Storage.Backend = "redis"
	if _, err := NewRepository(cfg, afero.NewMemMapFs()); err == nil {
		t.Error("Expected error for unsupported backend")
	}
}

func TestOpenStoreRecoversFromMalformedState(t *testing.T) {
	fsys := afero.NewMemMapFs()
	cfg := testConfig()
	if err := afero.WriteFile(fsys, TaskFilePath(cfg), []byte(`{{{`), 0o644); err != nil {
		t.Fatalf("Failed to plant malformed file: %v", err)
	}

	repo, err := NewRepository(cfg, fsys)
	if err != nil {
		t.Fatalf("NewRepository failed: %v", err)
	}

	s, err := OpenStore(repo, false)
	if err != nil {
		t.Fatalf("OpenStore should recover from malformed state, got %v", err)
	}
	if s.Stats().Total != 0 {
		t.Errorf("Recovered store should be empty, got %d tasks", s.Stats().Total)
	}
}

func TestOpenStoreStrictPropagatesMalformedState(t *testing.T) {
	fsys := afero.NewMemMapFs()
	cfg := testConfig()
	if err := afero.WriteFile(fsys, TaskFilePath(cfg), []byte(`{{{`), 0o644); err != nil {
		t.Fatalf("Failed to plant malformed file: %v", err)
	}

	repo, err := NewRepository(cfg, fsys)
	if err != nil {
		t.Fatalf("NewRepository failed: %v", err)
	}

	_, err = OpenStore(repo, true)
	if err == nil {
		t.Fatal("Expected strict mode to propagate the malformed-state error")
	}
	var malformed *store.MalformedStateError
	if !errors.As(err, &malformed) {
		t.Errorf("Expected *MalformedStateError, got %T: %v", err, err)
	}
}

func TestOpenStoreLoadsExistingCollection(t *testing.T) {
	fsys := afero.NewMemMapFs()
	cfg := testConfig()

	payload := []byte(`[
  {"id": "6a1f1c2d-9b3e-4f5a-8c7d-1e2f3a4b5c6d", "text": "Walk the dog", "completed": false, "createdAt": 1700000002000},
  {"id": "0f9e8d7c-6b5a-4f3e-8d1c-2b3a4c5d6e7f", "text": "Buy milk", "completed": true, "createdAt": 1700000001000}
]`)
	if err := afero.WriteFile(fsys, TaskFilePath(cfg), payload, 0o644); err != nil {
		t.Fatalf("Failed to write task file: %v", err)
	}

	repo, err := NewRepository(cfg, fsys)
	if err != nil {
		t.Fatalf("NewRepository failed: %v", err)
	}

	s, err := OpenStore(repo, false)
	if err != nil {
		t.Fatalf("OpenStore failed: %v", err)
	}

	all := s.View(models.FilterAll)
	if len(all) != 2 {
		t.Fatalf("Expected 2 tasks, got %d", len(all))
	}
	if all[0].Text != "Walk the dog" || all[1].Text != "Buy milk" {
		t.Errorf("Order not preserved: got [%s, %s]", all[0].Text, all[1].Text)
	}
	st := s.Stats()
	if st.Total != 2 || st.Pending != 1 || st.Completed != 1 {
		t.Errorf("Unexpected stats: %+v", st)
	}
}
