// Package tasklist owns the authoritative task collection and all mutation
// logic. Every mutator adjusts the in-memory collection and then saves the
// whole collection through the injected repository before returning. Derived
// views never mutate state and can be recomputed freely.
package tasklist

import (
	"strings"

	"ticklist/models"
	"ticklist/store"
)

// Store holds the ordered task collection, newest first. It is not safe for
// concurrent use; the application is single-threaded by design.
type Store struct {
	repo   store.Repository
	tasks  []models.Task
	filter models.Filter
}

// New returns an empty store over the given repository without touching
// storage. It is the recovery path when loading fails and the starting point
// for tests that seed their own state.
func New(repo store.Repository) *Store {
	return &Store{
		repo:   repo,
		tasks:  []models.Task{},
		filter: models.FilterAll,
	}
}

// Load initializes a store from the repository's current state. Decode
// failures propagate as *store.MalformedStateError so the caller can choose
// between aborting and resetting to empty.
func Load(repo store.Repository) (*Store, error) {
	tasks, err := repo.Load()
	if err != nil {
		return nil, err
	}
	return &Store{repo: repo, tasks: tasks, filter: models.FilterAll}, nil
}

// Add trims raw and prepends a new task. A blank result is a no-op: no task
// is created and nothing is saved. The returned task is nil in that case.
func (s *Store) Add(raw string) (*models.Task, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, nil
	}

	task := models.NewTask(text)
	s.tasks = append([]models.Task{task}, s.tasks...)
	return &task, s.save()
}

// Toggle flips the completion flag of the task with the given id, leaving its
// position and every other field unchanged. An unknown id is a no-op for the
// collection, but the save still runs: persistence is triggered by the call,
// not by whether it changed anything.
func (s *Store) Toggle(id string) (*models.Task, error) {
	var toggled *models.Task
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			t := s.tasks[i]
			toggled = &t
			break
		}
	}
	return toggled, s.save()
}

// Delete removes the task with the given id if present and reports whether a
// task was removed. The save runs either way.
func (s *Store) Delete(id string) (bool, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
			return true, s.save()
		}
	}
	return false, s.save()
}

// ClearCompleted removes every completed task, preserving the relative order
// of the remainder, and reports how many were removed. The save runs even
// when nothing was completed.
func (s *Store) ClearCompleted() (int, error) {
	kept := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	removed := len(s.tasks) - len(kept)
	s.tasks = kept
	return removed, s.save()
}

// View returns the tasks matching the filter in collection order. The result
// is a copy; callers cannot reach the underlying collection through it.
func (s *Store) View(f models.Filter) []models.Task {
	out := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Stats returns the aggregate counts over the full collection.
func (s *Store) Stats() models.Stats {
	st := models.Stats{Total: len(s.tasks)}
	for _, t := range s.tasks {
		if t.Completed {
			st.Completed++
		} else {
			st.Pending++
		}
	}
	return st
}

// Find returns the task whose id equals id, or whose id starts with it when
// the prefix is unambiguous. The second return reports whether a single match
// was found.
func (s *Store) Find(id string) (models.Task, bool) {
	var match models.Task
	count := 0
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
		if strings.HasPrefix(t.ID, id) {
			match = t
			count++
		}
	}
	if count == 1 && id != "" {
		return match, true
	}
	return models.Task{}, false
}

// SetFilter records the presentation layer's filter selection. The filter is
// ephemeral state and never persisted; a fresh load always starts at all.
func (s *Store) SetFilter(f models.Filter) { s.filter = f }

// Filter returns the currently selected filter.
func (s *Store) Filter() models.Filter { return s.filter }

// Selected returns the view for the currently selected filter.
func (s *Store) Selected() []models.Task { return s.View(s.filter) }

// Reload replaces the collection with the repository's current state. Used by
// the board when another process rewrote the slot; the ephemeral filter is
// kept as-is.
func (s *Store) Reload() error {
	tasks, err := s.repo.Load()
	if err != nil {
		return err
	}
	s.tasks = tasks
	return nil
}

// Close releases the underlying repository.
func (s *Store) Close() error { return s.repo.Close() }

// save persists the full collection. On failure the in-memory collection
// stays authoritative and the error is returned for the caller to surface.
func (s *Store) save() error {
	return s.repo.Save(s.tasks)
}
