package store

import (
	"bytes"
	"sync"
)

// MemoryStore keeps entries in memory. Data is lost when the process exits.
type MemoryStore struct {
	mu  sync.Mutex
	buf bytes.Buffer
	n   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Location() string { return "memory" }

func (m *MemoryStore) Append(r Record) error {
	entry, err := Encode(r)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buf.Write(entry)
	m.n++
	return nil
}

// ReadAll returns a copy of everything appended so far.
func (m *MemoryStore) ReadAll() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return bytes.Clone(m.buf.Bytes()), nil
}

// Len returns the number of appended records.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.n
}
