// Package postgres stores requests and notifications in PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/samandr77/microservices/intranet/internal/entity"
)

const uniqueViolationCode = "23505"

// Queryer is satisfied by *pgxpool.Pool, pgx.Tx and pgxmock pools.
type Queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type scanner interface {
	Scan(dest ...any) error
}

func translateErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return entity.ErrAlreadyExists
	}

	return err
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}

	return *s
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}

	v := s.String

	return &v
}
