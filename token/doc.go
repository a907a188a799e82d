// Package token extracts display identity from a bearer token the backend
// issued as a JWT, without verifying its signature.
//
// # Trust model
//
// The console is a client: it has no verification key and must not pretend
// to validate tokens. Peeked claims pre-fill the identity between token
// issuance and the post-login verification call; the backend re-checks the
// token on every request, and the verification response remains the
// authoritative identity source.
//
// # Architecture boundaries
//
// This package decodes claims. It does NOT store sessions, gate routes, or
// decide whether a token is acceptable.
//
// # What this package must NOT do
//
//   - Treat peeked claims as authorization material.
//   - Verify or create tokens.
//   - Import goConsole, session, or gateway.
package token
