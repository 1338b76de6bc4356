package service

import "errors"

var (
	// ErrNoRides is returned by ListRides when the table holds no rows
	// at all. Distinct from an empty page of an otherwise populated
	// result set.
	ErrNoRides = errors.New("no rides exist")
)
