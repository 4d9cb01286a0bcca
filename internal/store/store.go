// Package store owns the process-lifetime database: an in-memory SQLite
// instance created, migrated and seeded on Open, and discarded on Close.
//
// Every Open yields an independent database. The connection pool is limited to
// one connection, so all statements see the same in-memory data.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/janolinej/internal/migrations"
	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

// applyMigrations is a seam for testing migration failures.
var applyMigrations = migrations.Up

// Store is a seeded in-memory database plus the repositories over it.
type Store struct {
	RepositoryManager
	db   *sql.DB
	name string
}

// dsn names a private shared-cache memory database so that it survives
// connection recycling but is not visible to other stores.
func dsn(name string) string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
}

// Open creates a fresh in-memory database, applies the schema and seed
// migrations, and returns the ready store.
func Open(ctx context.Context) (*Store, error) {
	name := "janol-" + uuid.NewString()

	db, err := sql.Open("sqlite", dsn(name))
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(0)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping store: %w", err)
	}

	if err := applyMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize store: %w", err)
	}

	return &Store{
		RepositoryManager: NewSQLiteRepositoryManager(),
		db:                db,
		name:              name,
	}, nil
}

// DB returns the underlying pool. It satisfies both dbx.DBTX and
// dbx.TxBeginner.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Name returns the unique name of the in-memory database.
func (s *Store) Name() string {
	return s.name
}

// Close releases the database; its contents are lost.
func (s *Store) Close() error {
	return s.db.Close()
}
