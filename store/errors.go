package store

import "fmt"

// MalformedStateError reports a stored value that exists but cannot be
// decoded into the expected task array. Callers decide whether to abort or
// fall back to an empty collection.
type MalformedStateError struct {
	Path string
	Err  error
}

func (e *MalformedStateError) Error() string {
	return fmt.Sprintf("malformed task state at %s: %v", e.Path, e.Err)
}

func (e *MalformedStateError) Unwrap() error { return e.Err }

// StorageUnavailableError reports a slot that cannot be written (permissions,
// missing volume, database failure). In-memory state stays authoritative for
// the rest of the session.
type StorageUnavailableError struct {
	Path string
	Err  error
}

func (e *StorageUnavailableError) Error() string {
	return fmt.Sprintf("storage unavailable at %s: %v", e.Path, e.Err)
}

func (e *StorageUnavailableError) Unwrap() error { return e.Err }
