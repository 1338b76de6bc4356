package repository

import (
	"context"

	"github.com/brandonkimmmm/backend-coding-test/internal/domain"
)

// RideRepository defines the persistence operations for rides.
type RideRepository interface {
	// Insert persists a new ride and returns the full stored row,
	// including the generated rideID and created timestamp.
	Insert(ctx context.Context, ride domain.NewRide) (*domain.Ride, error)

	// GetByID retrieves a ride by its rideID.
	GetByID(ctx context.Context, id int64) (*domain.Ride, error)

	// Count returns the total number of rides in the table.
	Count(ctx context.Context) (int64, error)

	// List retrieves up to limit rides ordered by rideID descending,
	// skipping offset rows.
	List(ctx context.Context, limit, offset int) ([]*domain.Ride, error)
}
