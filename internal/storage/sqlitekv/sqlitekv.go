// Package sqlitekv backs the document substrate with a single-row
// key-value table in SQLite.
package sqlitekv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	"github.com/vesperapp/vesper/internal/storage"
	"github.com/vesperapp/vesper/internal/storage/sqlitekv/migrations"
)

type Substrate struct {
	db *sql.DB
}

// RunMigrations brings the kv_store schema up to date.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if necessary) the SQLite database at dsn and runs
// migrations. The caller owns the returned substrate and must Close it.
func Open(ctx context.Context, dsn string) (*Substrate, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Substrate{db: db}, nil
}

// NewSubstrate wraps an already-open database whose schema is current.
func NewSubstrate(db *sql.DB) *Substrate {
	return &Substrate{db: db}
}

func (s *Substrate) Get(ctx context.Context, key string) (string, bool, error) {
	row := s.db.QueryRowContext(ctx, `select value from kv_store where key=?`, key)

	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to select value: %w", err)
	}
	return value, true, nil
}

func (s *Substrate) Set(ctx context.Context, key, value string) error {
	query := ` INSERT INTO kv_store (key, value)
			values (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	_, err := s.db.ExecContext(ctx, query, key, value)
	if err != nil {
		var se sqlite3.Error
		if errors.As(err, &se) && se.Code == sqlite3.ErrFull {
			return fmt.Errorf("%w: %v", storage.ErrQuotaExceeded, err)
		}
		return fmt.Errorf("failed to upsert value: %w", err)
	}
	return nil
}

func (s *Substrate) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `delete from kv_store where key=?`, key); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}
	return nil
}

func (s *Substrate) Close() error {
	return s.db.Close()
}
