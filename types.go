package goConsole

import (
	"github.com/MrEthical07/goConsole/permission"
	"github.com/MrEthical07/goConsole/session"
)

// Mode defines a public type used by goConsole APIs.
//
// Mode instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Mode = permission.Mode

const (
	// ModeUnknown is an exported constant or variable used by the console core.
	ModeUnknown = permission.ModeUnknown
	// ModeSuperAdmin is an exported constant or variable used by the console core.
	ModeSuperAdmin = permission.ModeSuperAdmin
	// ModeWeb is an exported constant or variable used by the console core.
	ModeWeb = permission.ModeWeb
	// ModeView is an exported constant or variable used by the console core.
	ModeView = permission.ModeView
	// ModeMobile is an exported constant or variable used by the console core.
	ModeMobile = permission.ModeMobile
)

// Identity is the authenticated user's display and authorization identity.
//
//	Docs: docs/session.md
type Identity = session.Identity

// Session pairs the bearer token with the identity it authenticates.
type Session = session.Session

// Storage is the persistence adapter behind the session store. The session
// package ships memory, file, and Redis implementations.
type Storage = session.Storage

// RouteRule binds a navigable path to the modes allowed to enter it.
type RouteRule = permission.RouteRule

// MenuEntry is one navigation item of the console shell. AllowedModes must
// mirror the route rule of Path; [Builder.Build] enforces the pairing.
//
// MenuEntry instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MenuEntry struct {
	Label        string
	Icon         string
	Path         string
	AllowedModes []Mode
}

// Decision defines a public type used by goConsole APIs.
//
// Decision instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Decision uint8

const (
	// DecisionAuthorized is an exported constant or variable used by the console core.
	DecisionAuthorized Decision = iota
	// DecisionRedirectLogin is an exported constant or variable used by the console core.
	DecisionRedirectLogin
	// DecisionRedirectDefault is an exported constant or variable used by the console core.
	DecisionRedirectDefault
)

// String describes the string operation and its observable behavior.
func (d Decision) String() string {
	switch d {
	case DecisionAuthorized:
		return "authorized"
	case DecisionRedirectLogin:
		return "redirect_login"
	case DecisionRedirectDefault:
		return "redirect_default"
	default:
		return "unknown"
	}
}
