package postgre

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"ai-therapist/pkg/log"
)

// DB is the subset of *pgxpool.Pool the archive uses.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type implRepository struct {
	db DB
	l  log.Logger
}

// New returns an archive.Repository backed by Postgres.
func New(db DB, l log.Logger) *implRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
