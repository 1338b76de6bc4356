package app

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Registers the "sqlite" driver

	"github.com/brandonkimmmm/backend-coding-test/internal/config"
	"github.com/brandonkimmmm/backend-coding-test/internal/repository/sqlite"
)

// NewDatabase opens the embedded SQLite database and creates the Rides
// schema.
func NewDatabase(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if isMemoryDSN(cfg.DSN) {
		// Each pooled connection gets its own in-memory database, so
		// the pool is pinned to a single connection to keep every
		// request on the same table.
		db.SetMaxOpenConns(1)
	} else {
		// SQLite serializes writers itself; a small pool is enough.
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	// Verify connection.
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := sqlite.InitSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

func isMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}
