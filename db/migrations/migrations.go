package migrations

import "embed"

// FS embeds the ledger schema migrations stored in this directory. The
// golang-migrate library reads these files via the iofs driver when
// applying migrations.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the application expects.
const Version = 1
