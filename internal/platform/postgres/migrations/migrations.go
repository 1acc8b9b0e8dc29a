// Package migrations holds the embedded goose migration scripts applied at
// server startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
