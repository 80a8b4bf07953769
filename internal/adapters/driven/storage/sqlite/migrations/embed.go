// Package migrations holds the versioned schema of the SQLite store.
package migrations

import "embed"

// FS holds NNN_name.up.sql and NNN_name.down.sql pairs, applied in
// version order by the store.
//
//go:embed *.sql
var FS embed.FS
