package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/technopolitica/morty/internal/domain"
)

var ErrNotFound = errors.New("not found")
var ErrConflict = errors.New("already exists")

type DBConnection interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, optionsAndArgs ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, optionsAndArgs ...any) pgx.Row
}

var _ domain.CharacterRepository = Repository{}

type Repository struct {
	DBConnection
}

func NewRepository(conn DBConnection) Repository {
	return Repository{conn}
}

// Connect opens a connection pool and verifies the database is reachable.
func Connect(ctx context.Context, connectionURL string) (pool *pgxpool.Pool, err error) {
	pool, err = pgxpool.New(ctx, connectionURL)
	if err != nil {
		err = fmt.Errorf("failed to create connection pool: %w", err)
		return
	}
	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		pool = nil
		err = fmt.Errorf("failed to reach database: %w", err)
	}
	return
}

func (repo Repository) WithinTransaction(ctx context.Context, op func(pgx.Tx) error) (err error) {
	tx, err := repo.DBConnection.Begin(ctx)
	if err != nil {
		err = fmt.Errorf("failed to begin transaction: %w", err)
		return
	}
	defer tx.Rollback(ctx)
	err = op(tx)
	if err != nil {
		return
	}
	err = tx.Commit(ctx)
	if err != nil {
		err = fmt.Errorf("failed to commit transaction: %w", err)
	}
	return
}
