package store

import (
	"errors"
	"fmt"
)

// Appender persists records.
type Appender interface {
	Append(r Record) error
}

// Reader returns the raw Store contents.
type Reader interface {
	ReadAll() ([]byte, error)
}

// Store is an append-only record log.
type Store interface {
	Appender
	Reader
	// Location describes where records go, for status and log output.
	Location() string
}

// ErrUnknownBackend is returned by New for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown store backend")

// New creates a Store based on the backend name.
//
// Supported backends:
//
//	"file"   - append-only text file at path (default)
//	"memory" - in-memory buffer (ephemeral, for dry runs and tests)
func New(backend, path string) (Store, error) {
	switch backend {
	case "file", "":
		return NewFileStore(path)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: file, memory)", ErrUnknownBackend, backend)
	}
}
