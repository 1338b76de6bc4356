package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/brandonkimmmm/backend-coding-test/internal/domain"
	"github.com/brandonkimmmm/backend-coding-test/internal/repository"
)

// RideRepository is a SQLite implementation of repository.RideRepository.
// Every statement uses bound parameters; user-supplied values are never
// interpolated into SQL text.
type RideRepository struct {
	q Querier
}

// NewRideRepository creates a new SQLite ride repository.
func NewRideRepository(db *sql.DB) *RideRepository {
	return &RideRepository{q: db}
}

// NewRideRepositoryWithTx creates a ride repository using a transaction.
func NewRideRepositoryWithTx(tx *sql.Tx) *RideRepository {
	return &RideRepository{q: tx}
}

// Insert persists a new ride and reads the stored row back, so the
// caller always observes the generated rideID and created timestamp.
func (r *RideRepository) Insert(ctx context.Context, ride domain.NewRide) (*domain.Ride, error) {
	query := `
		INSERT INTO Rides (startLat, startLong, endLat, endLong, riderName, driverName, driverVehicle)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.q.ExecContext(ctx, query,
		ride.StartLat,
		ride.StartLong,
		ride.EndLat,
		ride.EndLong,
		ride.RiderName,
		ride.DriverName,
		ride.DriverVehicle,
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

// GetByID retrieves a ride by its rideID.
func (r *RideRepository) GetByID(ctx context.Context, id int64) (*domain.Ride, error) {
	query := `
		SELECT rideID, startLat, startLong, endLat, endLong, riderName, driverName, driverVehicle, created
		FROM Rides WHERE rideID = ?
	`

	var ride domain.Ride
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&ride.RideID,
		&ride.StartLat,
		&ride.StartLong,
		&ride.EndLat,
		&ride.EndLong,
		&ride.RiderName,
		&ride.DriverName,
		&ride.DriverVehicle,
		&ride.Created,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &ride, nil
}

// Count returns the total number of rides in the table.
func (r *RideRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(rideID) FROM Rides`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// List retrieves up to limit rides ordered by rideID descending,
// skipping offset rows.
func (r *RideRepository) List(ctx context.Context, limit, offset int) ([]*domain.Ride, error) {
	query := `
		SELECT rideID, startLat, startLong, endLat, endLong, riderName, driverName, driverVehicle, created
		FROM Rides ORDER BY rideID DESC LIMIT ? OFFSET ?
	`

	rows, err := r.q.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rides []*domain.Ride
	for rows.Next() {
		var ride domain.Ride
		if err := rows.Scan(
			&ride.RideID,
			&ride.StartLat,
			&ride.StartLong,
			&ride.EndLat,
			&ride.EndLong,
			&ride.RiderName,
			&ride.DriverName,
			&ride.DriverVehicle,
			&ride.Created,
		); err != nil {
			return nil, err
		}
		rides = append(rides, &ride)
	}
	return rides, rows.Err()
}
