package migrations

import "embed"

// FS содержит SQL миграции postgres для golang-migrate
//
//go:embed *.sql
var FS embed.FS
