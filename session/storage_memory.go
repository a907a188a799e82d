package session

import "sync"

// MemoryStorage is a process-local [Storage] adapter. Used by tests and by
// embeddings that do not need the session to survive a restart.
//
// MemoryStorage instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MemoryStorage struct {
	mu      sync.Mutex
	rec     Record
	present bool
}

// NewMemoryStorage creates an empty in-memory storage adapter.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Read describes the read operation and its observable behavior.
func (m *MemoryStorage) Read() (Record, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rec, m.present, nil
}

// Write describes the write operation and its observable behavior.
func (m *MemoryStorage) Write(rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rec = rec
	m.present = true
	return nil
}

// Erase describes the erase operation and its observable behavior.
func (m *MemoryStorage) Erase() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rec = Record{}
	m.present = false
	return nil
}
