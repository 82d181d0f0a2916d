// Package sessionstore persists the single client-side session slot: the
// bearer access token plus an advisory restricted-account flag.
//
// The store is deliberately a key-value slot, not a session table — the
// CRM client holds at most one session at a time. Two implementations are
// provided: MemoryStore for tests and single-process deployments, and
// RedisStore for server-rendered deployments that need the credential to
// survive restarts.
//
// The Restricted flag hides management navigation for the demo/guest
// account. It is a UI hint only and is trivially forgeable by the client;
// server-side authorization must independently enforce any restriction.
package sessionstore
