package repository

import "errors"

var (
	// ErrNotFound is returned when no ride matches the requested id.
	ErrNotFound = errors.New("ride not found")
)
