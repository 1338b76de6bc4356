package service

import (
	"context"
	"log/slog"

	"github.com/brandonkimmmm/backend-coding-test/internal/domain"
	"github.com/brandonkimmmm/backend-coding-test/internal/logger"
	"github.com/brandonkimmmm/backend-coding-test/internal/repository"
	"github.com/brandonkimmmm/backend-coding-test/internal/validation"
)

// RideService orchestrates validation and persistence for the ride
// resource. CreateRide is the only mutating operation; the table is
// append-only.
type RideService struct {
	rideRepo repository.RideRepository
	log      *slog.Logger
}

// NewRideService creates a new RideService.
func NewRideService(rideRepo repository.RideRepository, log *slog.Logger) *RideService {
	return &RideService{
		rideRepo: rideRepo,
		log:      log,
	}
}

// CreateRide validates the raw body fields and inserts a row on
// success. The returned ride is the persisted row, including the
// generated rideID and created timestamp. A violated constraint
// surfaces as *validation.FieldError before any storage access.
func (s *RideService) CreateRide(ctx context.Context, in validation.CreateRideInput) (*domain.Ride, error) {
	fields, err := validation.CreateRide(in)
	if err != nil {
		logger.Ctx(ctx, s.log).Info("create ride rejected", "error", err)
		return nil, err
	}

	ride, err := s.rideRepo.Insert(ctx, fields)
	if err != nil {
		logger.Ctx(ctx, s.log).Error("ride insert failed", "error", err)
		return nil, err
	}

	logger.Ctx(ctx, s.log).Info("ride created", "ride_id", ride.RideID)
	return ride, nil
}

// GetRide validates the raw id and returns the matching ride.
// A missing row surfaces as repository.ErrNotFound.
func (s *RideService) GetRide(ctx context.Context, rawID string) (*domain.Ride, error) {
	id, err := validation.RideID(rawID)
	if err != nil {
		logger.Ctx(ctx, s.log).Info("get ride rejected", "id", rawID, "error", err)
		return nil, err
	}

	ride, err := s.rideRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ride, nil
}

// ListRides validates the pagination window and returns the total row
// count plus up to limit rides ordered by rideID descending, skipping
// offset = limit*(page-1) rows. An empty table is a distinct outcome
// (ErrNoRides) from an empty page past the end of the result set.
func (s *RideService) ListRides(ctx context.Context, rawLimit, rawPage string) (*domain.RidesPage, error) {
	limit, page, err := validation.ListRides(rawLimit, rawPage)
	if err != nil {
		logger.Ctx(ctx, s.log).Info("list rides rejected", "limit", rawLimit, "page", rawPage, "error", err)
		return nil, err
	}

	count, err := s.rideRepo.Count(ctx)
	if err != nil {
		logger.Ctx(ctx, s.log).Error("ride count failed", "error", err)
		return nil, err
	}

	if count == 0 {
		logger.Ctx(ctx, s.log).Info("no rides in table")
		return nil, ErrNoRides
	}

	offset := limit * (page - 1)
	rows, err := s.rideRepo.List(ctx, limit, offset)
	if err != nil {
		logger.Ctx(ctx, s.log).Error("ride list failed", "error", err)
		return nil, err
	}
	if rows == nil {
		// A window past the end serializes as an empty array.
		rows = []*domain.Ride{}
	}

	logger.Ctx(ctx, s.log).Info("rides listed", "count", count, "limit", limit, "page", page)
	return &domain.RidesPage{Count: count, Rows: rows}, nil
}

// CountRides returns the total number of rides in the table.
func (s *RideService) CountRides(ctx context.Context) (int64, error) {
	return s.rideRepo.Count(ctx)
}
