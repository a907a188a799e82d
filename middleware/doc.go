// Package middleware exposes HTTP middleware adapters that apply goConsole
// route decisions to a server-rendered console shell.
//
// # Guards
//
//   - [Protect] — full route guarding: redirects to login or the default
//     path per [goConsole.Console.Authorize].
//   - [RequireSession] — session presence only, no per-route mode check.
//
// Each guard resolves the request path against the console's route registry
// and either serves the wrapped handler or issues a 303 redirect.
//
// # Architecture boundaries
//
// This package translates HTTP semantics into Console calls. It does NOT
// implement authorization logic itself — all decisions are delegated to
// Console.Authorize.
//
// # What this package must NOT do
//
//   - Read or write session storage directly (the Console handles state).
//   - Make authorization decisions beyond the Decision returned by Authorize.
//   - Call the backend.
package middleware
