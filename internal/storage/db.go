// Package storage opens the console's local SQLite database and exposes the
// repositories living in it. The database holds nothing but named slots;
// conversations stay in memory and are intentionally lost on restart.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/Aljenshin/portfolio-console/internal/slots"
	"github.com/Aljenshin/portfolio-console/internal/storage/migrations"

	_ "modernc.org/sqlite"
)

// Database bundles the open connection with the repositories built on it.
type Database struct {
	db    *sql.DB
	Slots slots.Repository
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if necessary) the SQLite file at dsn, migrates the
// schema, and returns the ready-to-use repositories.
func Open(ctx context.Context, dsn string) (*Database, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Database{
		db:    db,
		Slots: slots.NewSQLiteRepository(db),
	}, nil
}

func (d *Database) Close() error {
	return d.db.Close()
}
