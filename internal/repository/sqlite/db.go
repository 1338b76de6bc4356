package sqlite

import (
	"context"
	"database/sql"
)

// Querier is an interface satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Ensure interfaces are satisfied.
var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)

// InitSchema creates the Rides table if it does not exist yet.
// rideID is an autoincrement surrogate key, so ids are monotonically
// increasing and never reused; created defaults at insert time.
func InitSchema(ctx context.Context, q Querier) error {
	_, err := q.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS Rides
		(
		rideID INTEGER PRIMARY KEY AUTOINCREMENT,
		startLat DECIMAL NOT NULL,
		startLong DECIMAL NOT NULL,
		endLat DECIMAL NOT NULL,
		endLong DECIMAL NOT NULL,
		riderName TEXT NOT NULL,
		driverName TEXT NOT NULL,
		driverVehicle TEXT NOT NULL,
		created DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}
