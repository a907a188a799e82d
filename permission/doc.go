// Package permission provides the typed permission-level enumeration and the
// frozen route-rule registry used by goConsole route guarding.
//
// # Registry lifecycle
//
//   - [Registry.Register] during construction (via the root Builder).
//   - [Registry.Freeze] at Build time; registration afterwards is an error.
//   - [Registry.Allowed] on every navigation attempt; read-only after Freeze.
//
// # Architecture boundaries
//
// This package owns the [Mode] enumeration and the path → allowed-mode
// lookup. It does NOT read session state, issue redirects, or talk to the
// backend — the root Console combines session state with registry lookups
// to produce guard decisions.
//
// # What this package must NOT do
//
//   - Import goConsole, session, or gateway (no upward imports).
//   - Mutate rules after Freeze.
//   - Special-case individual paths; the login path exemption is the root
//     Console's concern.
package permission
