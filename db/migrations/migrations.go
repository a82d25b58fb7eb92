package migrations

import "embed"

// FS holds the schema migrations, read by golang-migrate through iofs.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the binary expects.
const Version = 1
