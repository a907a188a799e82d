package permission

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRegistryFrozen is an exported constant or variable used by the console core.
var ErrRegistryFrozen = errors.New("route registry frozen")

// UnknownPathPolicy decides the guard outcome for a path with no registered
// rule.
//
// UnknownPathPolicy instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type UnknownPathPolicy uint8

const (
	// UnknownPathDeny is an exported constant or variable used by the console core.
	// It is the default: an unregistered path is denied for every session.
	UnknownPathDeny UnknownPathPolicy = iota
	// UnknownPathAllow is an exported constant or variable used by the console core.
	// It restores the historical behavior where an unregistered path is open
	// to any authenticated session.
	UnknownPathAllow
)

// RouteRule maps one navigable path to the set of modes allowed to access it.
//
// RouteRule instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RouteRule struct {
	Path  string
	Modes []Mode
}

// Registry is the frozen path → allowed-mode table consulted on every
// navigation attempt.
//
// Registry instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Registry struct {
	policy UnknownPathPolicy
	rules  map[string][]Mode
	order  []string
	frozen bool
}

// NewRegistry creates an empty route registry with the given unknown-path
// policy.
func NewRegistry(policy UnknownPathPolicy) *Registry {
	return &Registry{
		policy: policy,
		rules:  make(map[string][]Mode),
	}
}

// Register adds a rule for path. Registering an empty path, an empty mode
// set, a duplicate path, or registering after Freeze is an error.
func (r *Registry) Register(path string, modes ...Mode) error {
	if r.frozen {
		return ErrRegistryFrozen
	}
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("route path %q must start with /", path)
	}
	if len(modes) == 0 {
		return fmt.Errorf("route %s has no allowed modes", path)
	}
	if _, exists := r.rules[path]; exists {
		return fmt.Errorf("route %s registered twice", path)
	}

	copied := make([]Mode, len(modes))
	copy(copied, modes)
	r.rules[path] = copied
	r.order = append(r.order, path)
	return nil
}

// Freeze makes the registry immutable. Idempotent.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	return r.frozen
}

// Lookup returns the allowed-mode set for path and whether a rule exists.
func (r *Registry) Lookup(path string) ([]Mode, bool) {
	modes, ok := r.rules[path]
	if !ok {
		return nil, false
	}
	out := make([]Mode, len(modes))
	copy(out, modes)
	return out, true
}

// Allowed reports whether mode may access path, applying the unknown-path
// policy when no rule exists.
func (r *Registry) Allowed(path string, mode Mode) bool {
	modes, ok := r.rules[path]
	if !ok {
		return r.policy == UnknownPathAllow
	}
	return mode.In(modes)
}

// Rules returns the registered rules in registration order.
func (r *Registry) Rules() []RouteRule {
	out := make([]RouteRule, 0, len(r.order))
	for _, path := range r.order {
		modes := make([]Mode, len(r.rules[path]))
		copy(modes, r.rules[path])
		out = append(out, RouteRule{Path: path, Modes: modes})
	}
	return out
}

// Policy returns the configured unknown-path policy.
func (r *Registry) Policy() UnknownPathPolicy {
	return r.policy
}
