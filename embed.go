package aurelle

import "embed"

// MigrationsFS holds the SQL migration files shipped with the binary.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
