package store

import (
	"errors"
	"testing"

	"github.com/spf13/afero"

	"ticklist/models"
)

func setupFileRepo(t *testing.T, format string) (*FileRepository, afero.Fs) {
	t.Helper()

	fsys := afero.NewMemMapFs()
	repo, err := NewFileRepository(fsys, "data/tasks."+format, format)
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	return repo, fsys
}

func sampleTasks() []models.Task {
	return []models.Task{
		{ID: "6a1f1c2d-9b3e-4f5a-8c7d-1e2f3a4b5c6d", Text: "Walk the dog", Completed: false, CreatedAt: 1700000002000},
		{ID: "0f9e8d7c-6b5a-4f3e-8d1c-2b3a4c5d6e7f", Text: "Buy milk", Completed: true, CreatedAt: 1700000001000},
	}
}

func TestFileRepository_LoadAbsentReturnsEmpty(t *testing.T) {
	for _, format := range []string{"json", "yaml"} {
		repo, _ := setupFileRepo(t, format)

		tasks, err := repo.Load()
		if err != nil {
			t.Fatalf("[%s] Load on absent file failed: %v", format, err)
		}
		if len(tasks) != 0 {
			t.Errorf("[%s] Expected empty collection, got %d tasks", format, len(tasks))
		}
	}
}

func TestFileRepository_RoundTrip(t *testing.T) {
	for _, format := range []string{"json", "yaml"} {
		repo, _ := setupFileRepo(t, format)
		want := sampleTasks()

		if err := repo.Save(want); err != nil {
			t.Fatalf("[%s] Save failed: %v", format, err)
		}

		got, err := repo.Load()
		if err != nil {
			t.Fatalf("[%s] Load failed: %v", format, err)
		}

		if len(got) != len(want) {
			t.Fatalf("[%s] Expected %d tasks, got %d", format, len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("[%s] Task %d mismatch: got %+v, want %+v", format, i, got[i], want[i])
			}
		}
	}
}

func TestFileRepository_SaveOverwrites(t *testing.T) {
	repo, _ := setupFileRepo(t, "json")

	if err := repo.Save(sampleTasks()); err != nil {
		t.Fatalf("First save failed: %v", err)
	}
	if err := repo.Save([]models.Task{}); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	tasks, err := repo.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("Expected overwrite to leave 0 tasks, got %d", len(tasks))
	}
}

func TestFileRepository_LoadEmptyFileReturnsEmpty(t *testing.T) {
	repo, fsys := setupFileRepo(t, "json")

	if err := afero.WriteFile(fsys, repo.Path(), []byte{}, 0o644); err != nil {
		t.Fatalf("Failed to write empty file: %v", err)
	}

	tasks, err := repo.Load()
	if err != nil {
		t.Fatalf("Load on empty file failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("Expected empty collection, got %d tasks", len(tasks))
	}
}

func TestFileRepository_LoadMalformedState(t *testing.T) {
	repo, fsys := setupFileRepo(t, "json")

	if err := afero.WriteFile(fsys, repo.Path(), []byte(`{"not":"an array"`), 0o644); err != nil {
		t.Fatalf("Failed to write malformed file: %v", err)
	}

	_, err := repo.Load()
	if err == nil {
		t.Fatal("Expected error for malformed state")
	}
	var malformed *MalformedStateError
	if !errors.As(err, &malformed) {
		t.Errorf("Expected *MalformedStateError, got %T: %v", err, err)
	}
}

func TestFileRepository_UnsupportedFormat(t *testing.T) {
	if _, err := NewFileRepository(afero.NewMemMapFs(), "tasks.toml", "toml"); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestFileRepository_SaveUnavailableStorage(t *testing.T) {
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())
	repo, err := NewFileRepository(fsys, "tasks.json", "json")
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}

	err = repo.Save(sampleTasks())
	if err == nil {
		t.Fatal("Expected error when saving to read-only filesystem")
	}
	var unavailable *StorageUnavailableError
	if !errors.As(err, &unavailable) {
		t.Errorf("Expected *StorageUnavailableError, got %T: %v", err, err)
	}
}
