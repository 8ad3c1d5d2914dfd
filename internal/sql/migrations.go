// Package sql embeds the schema migrations applied by db.ApplyMigrations.
package sql

import "embed"

//go:embed migrations
var Migrations embed.FS
