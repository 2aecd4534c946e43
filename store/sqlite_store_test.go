package store

import (
	"errors"
	"path/filepath"
	"testing"
)

func setupSQLiteRepo(t *testing.T) *SQLiteRepository {
	t.Helper()

	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("Failed to open sqlite repository: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSQLiteRepository_LoadAbsentReturnsEmpty(t *testing.T) {
	repo := setupSQLiteRepo(t)

	tasks, err := repo.Load()
	if err != nil {
		t.Fatalf("Load on fresh database failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("Expected empty collection, got %d tasks", len(tasks))
	}
}

func TestSQLiteRepository_RoundTrip(t *testing.T) {
	repo := setupSQLiteRepo(t)
	want := sampleTasks()

	if err := repo.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := repo.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d tasks, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Task %d mismatch: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSQLiteRepository_SaveOverwrites(t *testing.T) {
	repo := setupSQLiteRepo(t)

	if err := repo.Save(sampleTasks()); err != nil {
		t.Fatalf("First save failed: %v", err)
	}
	only := sampleTasks()[:1]
	if err := repo.Save(only); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	tasks, err := repo.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("Expected 1 task after overwrite, got %d", len(tasks))
	}
	if tasks[0] != only[0] {
		t.Errorf("Task mismatch: got %+v, want %+v", tasks[0], only[0])
	}
}

func TestSQLiteRepository_LoadMalformedState(t *testing.T) {
	repo := setupSQLiteRepo(t)

	if _, err := repo.db.Exec(`INSERT INTO state (key, value) VALUES (?, ?)`, stateKey, []byte(`not json`)); err != nil {
		t.Fatalf("Failed to plant malformed state: %v", err)
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
