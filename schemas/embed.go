// Package schemas embeds the SQL migration files applied at server startup.
package schemas

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
