package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStorage persists the session record as a 0600 JSON file, the durable
// client-side storage that lets a console session survive a restart.
//
// FileStorage instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type FileStorage struct {
	path string
}

// NewFileStorage creates a file-backed storage adapter at path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// DefaultFileStorage places the session file under the user config dir,
// e.g. ~/.config/<app>/session.json.
func DefaultFileStorage(app string) (*FileStorage, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve user config dir: %w", err)
	}
	return NewFileStorage(filepath.Join(base, app, "session.json")), nil
}

// Path returns the backing file path.
func (f *FileStorage) Path() string {
	return f.path
}

// Read describes the read operation and its observable behavior.
func (f *FileStorage) Read() (Record, bool, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Record{}, false, nil
		}
		return Record{}, false, fmt.Errorf("read session file %s: %w", f.path, err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, false, fmt.Errorf("parse session file %s: %w", f.path, err)
	}
	return rec, true, nil
}

// Write describes the write operation and its observable behavior.
// The record lands via an adjacent temp file and rename so a crash mid-write
// cannot leave a torn session on disk.
func (f *FileStorage) Write(rec Record) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create session dir %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace session file %s: %w", f.path, err)
	}
	return nil
}

// Erase describes the erase operation and its observable behavior.
func (f *FileStorage) Erase() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file %s: %w", f.path, err)
	}
	return nil
}
