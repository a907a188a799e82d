package goConsole

import "errors"

var (
	// ErrConsoleNotReady is an exported constant or variable used by the console core.
	ErrConsoleNotReady = errors.New("console not initialized")
	// ErrInvalidCredentials is an exported constant or variable used by the console core.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrLoginVerification is an exported constant or variable used by the console core.
	ErrLoginVerification = errors.New("login verification failed")
	// ErrNotLoggedIn is an exported constant or variable used by the console core.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrSessionRejected is an exported constant or variable used by the console core.
	ErrSessionRejected = errors.New("session rejected by backend")
	// ErrRouteNotRegistered is an exported constant or variable used by the console core.
	ErrRouteNotRegistered = errors.New("route not registered")
	// ErrMenuRouteMismatch is an exported constant or variable used by the console core.
	ErrMenuRouteMismatch = errors.New("menu entry does not match a registered route")
	// ErrStorageRequired is an exported constant or variable used by the console core.
	ErrStorageRequired = errors.New("session storage required")
	// ErrRoutesRequired is an exported constant or variable used by the console core.
	ErrRoutesRequired = errors.New("at least one route must be registered")
	// ErrDefaultPathUnrouted is an exported constant or variable used by the console core.
	ErrDefaultPathUnrouted = errors.New("default path has no registered route")
	// ErrLoginPathRouted is an exported constant or variable used by the console core.
	ErrLoginPathRouted = errors.New("login path must not carry a route rule")
)
