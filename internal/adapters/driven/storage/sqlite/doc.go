// Package sqlite provides the SQLite-backed implementations of the
// driven storage ports.
//
// A single Store owns the database connection and runs embedded schema
// migrations on open; the individual store interfaces are exposed as
// wrappers over it. Entity collections are persisted as JSON payloads
// keyed by collection and ID, and filtered queries reuse the shared
// predicate semantics from the query package, so SQLite and memory
// stores cannot drift apart in filter behaviour.
package sqlite
