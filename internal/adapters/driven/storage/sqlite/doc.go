// Package sqlite provides a SQLite-backed implementation of driven.KeyValueStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It persists the user's settings and
// viewing history between runs.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.clipseek/data/store.db
//
// # Thread Safety
//
// All operations are thread-safe. Each key is written in a single statement,
// so concurrent writers to one key follow last-write-wins.
package sqlite
