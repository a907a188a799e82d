// Package goConsole provides the navigation and authorization core of a
// role-gated admin console client: a persistent session store, a token-bearing
// API gateway client, mode-based route guarding, and permission-aware menu
// filtering.
//
// The package is designed for concurrent client workloads: Console methods are
// safe to call from multiple goroutines after initialization through
// [Builder.Build].
//
// # Architecture boundaries
//
// goConsole is the public surface. It exposes [Console], [Builder], [Config],
// and value types (Identity, Decision, MenuEntry, MetricsSnapshot, etc.). All
// internal coordination — audit dispatch, metric storage — lives under
// internal/ and is never exported. Session persistence, transport, and mode
// parsing live in the session, gateway, and permission sub-packages.
//
// # What this package must NOT do
//
//   - Expose HTTP clients, storage adapters, or encoding details beyond the
//     adapter interfaces in its public API.
//   - Perform I/O outside of Console methods (construction via Builder is
//     allocation-only until Build).
//   - Import any sub-package that re-imports goConsole (no import cycles).
//
// # Performance contract
//
// Authorize and VisibleMenu are the hot paths. Both resolve from in-memory
// state — the frozen route registry and the cached session record — and never
// touch the network. Login, Logout, and resource operations are allowed one
// backend round-trip per call.
package goConsole
