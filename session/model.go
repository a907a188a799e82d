package session

import (
	"encoding/json"
	"errors"

	"github.com/MrEthical07/goConsole/permission"
)

// ErrIncompleteSession is an exported constant or variable used by the console core.
var ErrIncompleteSession = errors.New("session requires both token and identity")

// Identity is the authenticated principal attached to a session.
//
// Identity instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Identity struct {
	Username string          `json:"username"`
	Name     string          `json:"name,omitempty"`
	Mode     permission.Mode `json:"mode"`
}

// Session is the client-held proof of authentication: the bearer token plus
// the identity it was issued for.
//
// Session instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Session struct {
	Token    string
	Identity Identity
}

// Record is the persisted shape of a session. Token and Identity map to the
// durable-storage keys "token" and "user"; Identity is the serialized
// [Identity].
//
// Record instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Record struct {
	Token    string `json:"token"`
	Identity string `json:"user"`
}

func encodeRecord(sess Session) (Record, error) {
	if sess.Token == "" || sess.Identity.Username == "" {
		return Record{}, ErrIncompleteSession
	}

	data, err := json.Marshal(sess.Identity)
	if err != nil {
		return Record{}, err
	}
	return Record{Token: sess.Token, Identity: string(data)}, nil
}

func decodeRecord(rec Record) (Session, error) {
	if rec.Token == "" || rec.Identity == "" {
		return Session{}, ErrIncompleteSession
	}

	var identity Identity
	if err := json.Unmarshal([]byte(rec.Identity), &identity); err != nil {
		return Session{}, err
	}
	if identity.Username == "" {
		return Session{}, ErrIncompleteSession
	}
	return Session{Token: rec.Token, Identity: identity}, nil
}
