package store

import "ticklist/models"

// Repository defines the persistence boundary for the task collection.
// Implementations read and write the complete collection under a single fixed
// slot; they keep no task state of their own and never merge - every Save
// fully overwrites the previous value, last write wins.
type Repository interface {
	// Load reads the stored collection. An absent slot yields an empty
	// collection and a nil error. A present but undecodable value yields a
	// *MalformedStateError.
	Load() ([]models.Task, error)

	// Save serializes the full collection and overwrites the slot. Write
	// failures are reported as *StorageUnavailableError.
	Save(tasks []models.Task) error

	// Close releases any resources held by the repository, such as database
	// connections. It should be called when the repository is no longer needed.
	Close() error
}
