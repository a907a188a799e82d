// Package session provides the authoritative holder of console session state
// (bearer token + authenticated identity) over pluggable durable storage.
//
// # Invariant
//
// Token and identity are set and cleared together. Every [Storage] adapter
// persists both fields in a single Write/Erase call, and [Store.Get] treats a
// half-present record as no session (and self-heals it), so no observer can
// ever see a token without an identity or vice versa.
//
// # Adapters
//
//   - [MemoryStorage] — process-local; tests and short-lived embeddings.
//   - [FileStorage] — 0600 JSON file under the user config dir; the console
//     analogue of browser localStorage surviving a reload.
//   - [RedisStorage] — shares one console session across replicas of a
//     server-rendered embedding.
//
// # Architecture boundaries
//
// This package owns session state and persistence. It does NOT decide who may
// write: the root Console restricts writers to the login flow and the gateway
// rejection handler. It does NOT interpret tokens or evaluate permissions.
//
// # What this package must NOT do
//
//   - Import goConsole or gateway (no upward imports).
//   - Call the backend.
//   - Persist token and identity through separate adapter calls.
package session
