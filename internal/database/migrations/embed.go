package migrations

import "embed"

// FS contains the schema migrations shared by the sqlite and postgres backends.
//
//go:embed *.sql
var FS embed.FS
