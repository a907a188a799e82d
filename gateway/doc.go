// Package gateway is the sole HTTP channel between the console and its REST
// backend: one configured client that attaches the current bearer token to
// every request and reacts uniformly to authentication rejection.
//
// # Rejection contract
//
// A 401 from any endpoint means the presented credential is invalid or
// expired. The client invokes its OnUnauthenticated hook synchronously —
// exactly once per rejected request, before the call returns — and then
// surfaces [ErrUnauthenticated] to the caller. The hook is where the root
// Console clears the session store and notifies the application shell; the
// transport itself never navigates.
//
// All other non-2xx statuses pass through unmodified as [*StatusError] for
// local handling, with no session side effects.
//
// # Architecture boundaries
//
// This package owns request construction, header attachment, timeouts, and
// response decoding. It does NOT hold session state (it reads a TokenSource),
// does NOT evaluate permissions, and does NOT retry — retry policy belongs to
// callers, and the console deliberately ships none.
//
// # What this package must NOT do
//
//   - Import goConsole, session, or permission (no upward imports).
//   - Redirect, render, or otherwise reach into navigation.
//   - Cache or refresh tokens; the token read happens at issue time.
package gateway
