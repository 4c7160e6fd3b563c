package database

import (
	"context"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jmoiron/sqlx"

	"github.com/y-okubo/dotcell/schemas"
)

// Migrate applies the embedded SQL migrations in lexical order. Statements
// are idempotent, so re-running on an existing schema is safe.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	entries, err := fs.Glob(schemas.Migrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("fs.Glob(migrations) > %w", err)
	}
	sort.Strings(entries)

	for _, entry := range entries {
		contents, err := fs.ReadFile(schemas.Migrations, entry)
		if err != nil {
			return fmt.Errorf("fs.ReadFile(%s) > %w", entry, err)
		}
		if _, err := db.ExecContext(ctx, string(contents)); err != nil {
			return fmt.Errorf("db.ExecContext(%s) > %w", entry, err)
		}
	}
	return nil
}
