package session

import (
	"errors"
	"sync"
)

// Storage is the durable key-value adapter beneath a [Store]. Implementations
// persist the whole [Record] in one call so the token+identity invariant
// holds across process restarts.
//
//	Docs: docs/session.md
type Storage interface {
	// Read returns the persisted record and whether one exists.
	Read() (Record, bool, error)
	// Write replaces the persisted record atomically.
	Write(rec Record) error
	// Erase removes the persisted record. Erasing an absent record is a
	// no-op, not an error.
	Erase() error
}

// Store is the single authoritative holder of console session state.
// Safe for concurrent use: a logout may race an in-flight request's token
// read without tearing the invariant.
//
//	Docs: docs/session.md
type Store struct {
	mu         sync.Mutex
	storage    Storage
	onSelfHeal func()
}

// NewStore creates a session [Store] over the given storage adapter.
func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// ObserveSelfHeal installs a callback fired after a torn record has been
// erased. Install during setup, before the store is shared; the callback runs
// with the store lock held and must not call back into the store.
func (s *Store) ObserveSelfHeal(fn func()) {
	s.onSelfHeal = fn
}

// Get returns the current session, or ok=false when logged out. A record
// that decodes as half-present is erased and reported as no session.
func (s *Store) Get() (Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok, err := s.storage.Read()
	if err != nil {
		return Session{}, false, err
	}
	if !ok {
		return Session{}, false, nil
	}

	sess, err := decodeRecord(rec)
	if err != nil {
		if errors.Is(err, ErrIncompleteSession) {
			// Self-heal: a torn record must never surface as a session.
			if eraseErr := s.storage.Erase(); eraseErr != nil {
				return Session{}, false, eraseErr
			}
			if s.onSelfHeal != nil {
				s.onSelfHeal()
			}
			return Session{}, false, nil
		}
		return Session{}, false, err
	}
	return sess, true, nil
}

// Set replaces the current session. Both token and identity are required;
// they are persisted together in one adapter call.
func (s *Store) Set(token string, identity Identity) error {
	rec, err := encodeRecord(Session{Token: token, Identity: identity})
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.storage.Write(rec)
}

// Clear removes the session from durable storage. Idempotent: clearing an
// already-empty store is a no-op.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.storage.Erase()
}

// Token returns the current bearer token, if any. It satisfies the gateway
// TokenSource contract: the token is read at request-issue time, so a request
// racing a logout either carries the old token or none, never a torn value.
func (s *Store) Token() (string, bool) {
	sess, ok, err := s.Get()
	if err != nil || !ok {
		return "", false
	}
	return sess.Token, true
}
