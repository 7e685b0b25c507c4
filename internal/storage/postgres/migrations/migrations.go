// Package migrations содержит встроенные SQL-миграции для goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
