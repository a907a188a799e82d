package permission

import (
	"fmt"
	"strings"
)

// Mode is the permission level attached to an authenticated identity.
//
// Mode instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Mode uint8

const (
	// ModeUnknown is an exported constant or variable used by the console core.
	ModeUnknown Mode = iota
	// ModeSuperAdmin is an exported constant or variable used by the console core.
	ModeSuperAdmin
	// ModeWeb is an exported constant or variable used by the console core.
	ModeWeb
	// ModeView is an exported constant or variable used by the console core.
	ModeView
	// ModeMobile is an exported constant or variable used by the console core.
	// Mobile-only accounts exist in the backend user table but never reach
	// the console; no route rule should admit them.
	ModeMobile
)

const (
	modeSuperAdminWire = "SUPERADMIN"
	modeWebWire        = "WEB"
	modeViewWire       = "VIEW"
	modeMobileWire     = "MOBILE"
)

// ParseMode maps the backend wire value of a mode to its typed form.
// Unrecognized values map to [ModeUnknown]; they are never an error because
// the backend may grow account kinds the console does not gate on.
func ParseMode(value string) Mode {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case modeSuperAdminWire:
		return ModeSuperAdmin
	case modeWebWire:
		return ModeWeb
	case modeViewWire:
		return ModeView
	case modeMobileWire:
		return ModeMobile
	default:
		return ModeUnknown
	}
}

// String returns the backend wire value of the mode.
func (m Mode) String() string {
	switch m {
	case ModeSuperAdmin:
		return modeSuperAdminWire
	case ModeWeb:
		return modeWebWire
	case ModeView:
		return modeViewWire
	case ModeMobile:
		return modeMobileWire
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler so identities serialize with
// wire values rather than numeric codes.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	*m = ParseMode(string(text))
	return nil
}

// In reports whether m is a member of the given mode set.
func (m Mode) In(modes []Mode) bool {
	for _, candidate := range modes {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseModes maps a list of wire values, rejecting values that do not name a
// known mode. Unlike [ParseMode] this is strict: rule and menu definitions
// are static configuration, and a typo there must fail loudly.
func ParseModes(values []string) ([]Mode, error) {
	modes := make([]Mode, 0, len(values))
	for _, value := range values {
		mode := ParseMode(value)
		if mode == ModeUnknown {
			return nil, fmt.Errorf("unknown mode %q", value)
		}
		modes = append(modes, mode)
	}
	return modes, nil
}
