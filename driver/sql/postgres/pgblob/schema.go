package pgblob

import (
	"context"
	"database/sql"

	"github.com/dogmatiq/setkit/driver/sql/postgres/internal/pgerror"
)

// CreateSchema creates the PostgreSQL schema elements required by [Store].
func CreateSchema(
	ctx context.Context,
	db *sql.DB,
) error {
	return pgerror.Retry(
		ctx,
		db,
		func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(
				ctx,
				`CREATE SCHEMA IF NOT EXISTS setkit`,
			); err != nil {
				return err
			}

			_, err := tx.ExecContext(
				ctx,
				`CREATE TABLE IF NOT EXISTS setkit.blob (
					name TEXT NOT NULL PRIMARY KEY,
					data BYTEA NOT NULL
				)`,
			)
			return err
		},
		// Even though we use IF NOT EXISTS in the DDL, concurrent schema
		// creation can still report a unique violation.
		pgerror.CodeUniqueViolation,
	)
}
