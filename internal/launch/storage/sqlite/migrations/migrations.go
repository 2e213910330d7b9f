// Package migrations embeds the launch record SQLite schema.
package migrations

import "embed"

// FS holds the ordered schema files.
//
//go:embed *.sql
var FS embed.FS
