// Package pgblob provides an implementation of [blob.Store] that persists to
// a PostgreSQL database.
package pgblob

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dogmatiq/setkit/blob"
	"github.com/dogmatiq/setkit/driver/sql/postgres/internal/pgerror"
	"github.com/dogmatiq/setkit/internal/errorx"
)

// Store is an implementation of [blob.Store] that stores each blob as a row in
// the setkit.blob table.
//
// The table must be created using [CreateSchema] before the store is used.
type Store struct {
	DB *sql.DB
}

// Load returns the content of the named blob.
func (s *Store) Load(ctx context.Context, name string) (_ []byte, err error) {
	defer errorx.Wrap(&err, "unable to load blob %q", name)

	var data []byte

	row := s.DB.QueryRowContext(
		ctx,
		`SELECT data
		FROM setkit.blob
		WHERE name = $1`,
		name,
	)

	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, blob.NotFoundError{Name: name}
		}
		return nil, schemaHint(err)
	}

	return data, nil
}

// Save replaces the content of the named blob.
func (s *Store) Save(ctx context.Context, name string, data []byte) (err error) {
	defer errorx.Wrap(&err, "unable to save blob %q", name)

	if data == nil {
		data = []byte{}
	}

	_, err = s.DB.ExecContext(
		ctx,
		`INSERT INTO setkit.blob (
			name,
			data
		) VALUES (
			$1, $2
		) ON CONFLICT (name) DO UPDATE SET
			data = excluded.data`,
		name,
		data,
	)

	return schemaHint(err)
}

func schemaHint(err error) error {
	if pgerror.Is(err, pgerror.CodeUndefinedTable) {
		return errors.Join(err, errSchemaNotCreated)
	}
	return err
}

var errSchemaNotCreated = errors.New("the setkit schema has not been created, call pgblob.CreateSchema()")
