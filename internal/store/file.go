package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileStore appends records to a flat text file.
//
// Layout:
//
//	{
//	  "instruction": "...",
//	  "output": "..."
//	}
//	{
//	  ...
//
// The file as a whole is not a JSON document. There is no locking: a single
// writer process at a time is assumed.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path. The file itself is created
// on first append.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("store path required")
	}
	return &FileStore{path: path}, nil
}

// Location implements Store. For a FileStore it is the file path.
func (s *FileStore) Location() string { return s.path }

// Append writes one complete entry with a single write call.
func (s *FileStore) Append(r Record) error {
	entry, err := Encode(r)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	if _, err := f.Write(entry); err != nil {
		f.Close()
		return fmt.Errorf("failed to append to store: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}
	return nil
}

// ReadAll reads the whole file into memory.
func (s *FileStore) ReadAll() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read store: %w", err)
	}
	return data, nil
}
