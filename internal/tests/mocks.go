package tests

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/brandonkimmmm/backend-coding-test/internal/domain"
	"github.com/brandonkimmmm/backend-coding-test/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK RIDE REPOSITORY
// ──────────────────────────────────────────────

// MockRideRepository is an in-memory mock implementation of
// RideRepository. Rows are kept in insertion order with monotonically
// increasing ids, mirroring the autoincrement table.
type MockRideRepository struct {
	mu     sync.RWMutex
	rides  []*domain.Ride
	nextID int64

	// Counters for verification
	InsertCallCount int32
	CountCallCount  int32
	ListCallCount   int32

	// Error injection
	InsertError error
	GetError    error
	CountError  error
	ListError   error
}

// NewMockRideRepository creates a new mock ride repository.
func NewMockRideRepository() *MockRideRepository {
	return &MockRideRepository{nextID: 1}
}

func (m *MockRideRepository) Insert(ctx context.Context, ride domain.NewRide) (*domain.Ride, error) {
	atomic.AddInt32(&m.InsertCallCount, 1)
	if m.InsertError != nil {
		return nil, m.InsertError
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := &domain.Ride{
		RideID:        m.nextID,
		StartLat:      ride.StartLat,
		StartLong:     ride.StartLong,
		EndLat:        ride.EndLat,
		EndLong:       ride.EndLong,
		RiderName:     ride.RiderName,
		DriverName:    ride.DriverName,
		DriverVehicle: ride.DriverVehicle,
		Created:       time.Now().UTC().Format("2006-01-02 15:04:05"),
	}
	m.nextID++
	m.rides = append(m.rides, stored)

	copy := *stored
	return &copy, nil
}

func (m *MockRideRepository) GetByID(ctx context.Context, id int64) (*domain.Ride, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.rides {
		if r.RideID == id {
			copy := *r
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockRideRepository) Count(ctx context.Context) (int64, error) {
	atomic.AddInt32(&m.CountCallCount, 1)
	if m.CountError != nil {
		return 0, m.CountError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.rides)), nil
}

func (m *MockRideRepository) List(ctx context.Context, limit, offset int) ([]*domain.Ride, error) {
	atomic.AddInt32(&m.ListCallCount, 1)
	if m.ListError != nil {
		return nil, m.ListError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	// rideID descending: walk the insertion-ordered slice backwards.
	var result []*domain.Ride
	for i := len(m.rides) - 1 - offset; i >= 0 && len(result) < limit; i-- {
		copy := *m.rides[i]
		result = append(result, &copy)
	}
	return result, nil
}

// RideCount returns the number of stored rides for test assertions.
func (m *MockRideRepository) RideCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rides)
}
