package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MrEthical07/goConsole/permission"
)

func TestFileStorageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console", "session.json")
	storage := NewFileStorage(path)

	store := NewStore(storage)
	identity := Identity{Username: "ops", Mode: permission.ModeWeb}
	if err := store.Set("tok-file", identity); err != nil {
		t.Fatalf("set: %v", err)
	}

	// A fresh store over the same file models a process restart.
	reloaded := NewStore(NewFileStorage(path))
	sess, ok, err := reloaded.Get()
	if err != nil {
		t.Fatalf("get after reload: %v", err)
	}
	if !ok {
		t.Fatal("session must survive a restart")
	}
	if sess.Token != "tok-file" || sess.Identity.Mode != permission.ModeWeb {
		t.Fatalf("unexpected session %+v", sess)
	}
}

func TestFileStorageEraseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	storage := NewFileStorage(path)

	if err := storage.Erase(); err != nil {
		t.Fatalf("erase on missing file: %v", err)
	}

	if err := storage.Write(Record{Token: "t", Identity: `{"username":"u","mode":"WEB"}`}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := storage.Erase(); err != nil {
		t.Fatalf("erase: %v", err)
	}
	if err := storage.Erase(); err != nil {
		t.Fatalf("second erase: %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected file removed, stat err = %v", err)
	}
}

func TestFileStorageCorruptFileSurfacesError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	_, _, err := NewFileStorage(path).Read()
	if err == nil {
		t.Fatal("expected parse error for corrupt session file")
	}
}
