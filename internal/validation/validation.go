// Package validation holds the declarative input contracts for the
// three ride operations. Each contract is an ordered list of per-field
// rules evaluated in declaration order; the first failing field wins
// and later fields are not evaluated. Validation never touches the
// database.
package validation

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/brandonkimmmm/backend-coding-test/internal/domain"
)

// Failure messages, one per declared constraint.
const (
	MsgStartCoords   = "Start latitude and longitude must be between -90 - 90 and -180 to 180 degrees respectively"
	MsgEndCoords     = "End latitude and longitude must be between -90 - 90 and -180 to 180 degrees respectively"
	MsgRiderName     = "Rider name must be a non empty string"
	MsgDriverName    = "Driver name must be a non empty string"
	MsgDriverVehicle = "Driver vehicle must be a non empty string"
	MsgLimit         = "Limit must be an integer between 1 and 50"
	MsgPage          = "Page must be an integer greater than 0"
	MsgRideID        = "ID must be an integer greater than 0"
)

// Pagination defaults for the list operation.
const (
	DefaultLimit = 50
	MaxLimit     = 50
	DefaultPage  = 1
)

// FieldError reports the first violated constraint of an operation.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// CreateRideInput carries the raw, still-untyped body fields of the
// create operation. JSON decoding leaves numbers as float64, strings
// as string and so on; the rules below coerce or reject each value.
type CreateRideInput struct {
	StartLat      any
	StartLong     any
	EndLat        any
	EndLong       any
	RiderName     any
	DriverName    any
	DriverVehicle any
}

// CreateRide validates the create contract in declaration order:
// start_lat, start_long, end_lat, end_long, rider_name, driver_name,
// driver_vehicle. Coordinates must be integral numbers (numeric
// strings are coerced) within ±90 / ±180; names and vehicle must be
// non-empty strings. Each field is checked independently, so a bad
// value always yields its own field's message.
func CreateRide(in CreateRideInput) (domain.NewRide, error) {
	var ride domain.NewRide

	rules := []struct {
		field   string
		message string
		ok      func() bool
	}{
		{"start_lat", MsgStartCoords, func() bool { return coord(in.StartLat, 90, &ride.StartLat) }},
		{"start_long", MsgStartCoords, func() bool { return coord(in.StartLong, 180, &ride.StartLong) }},
		{"end_lat", MsgEndCoords, func() bool { return coord(in.EndLat, 90, &ride.EndLat) }},
		{"end_long", MsgEndCoords, func() bool { return coord(in.EndLong, 180, &ride.EndLong) }},
		{"rider_name", MsgRiderName, func() bool { return text(in.RiderName, &ride.RiderName) }},
		{"driver_name", MsgDriverName, func() bool { return text(in.DriverName, &ride.DriverName) }},
		{"driver_vehicle", MsgDriverVehicle, func() bool { return text(in.DriverVehicle, &ride.DriverVehicle) }},
	}

	for _, rule := range rules {
		if !rule.ok() {
			return domain.NewRide{}, &FieldError{Field: rule.field, Message: rule.message}
		}
	}

	return ride, nil
}

// ListRides validates the pagination window. Both parameters are
// optional query values: an empty limit defaults to 50, an empty page
// to 1. Supplied values must be integers with limit in 1..50 and
// page >= 1.
func ListRides(rawLimit, rawPage string) (limit, page int, err error) {
	limit = DefaultLimit
	if rawLimit != "" {
		limit, err = strconv.Atoi(rawLimit)
		if err != nil || limit < 1 || limit > MaxLimit {
			return 0, 0, &FieldError{Field: "limit", Message: MsgLimit}
		}
	}

	page = DefaultPage
	if rawPage != "" {
		page, err = strconv.Atoi(rawPage)
		if err != nil || page < 1 {
			return 0, 0, &FieldError{Field: "page", Message: MsgPage}
		}
	}

	return limit, page, nil
}

// RideID validates the get-by-id path parameter: a required integer
// greater than zero.
func RideID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, &FieldError{Field: "id", Message: MsgRideID}
	}
	return id, nil
}

// coord coerces v into an integral coordinate within ±bound. JSON
// numbers and numeric strings are accepted; booleans, non-numeric
// strings and missing values are not.
func coord(v any, bound float64, out *float64) bool {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return false
		}
		f = parsed
	default:
		return false
	}

	if f != math.Trunc(f) || f < -bound || f > bound {
		return false
	}
	*out = f
	return true
}

// text accepts only non-empty strings.
func text(v any, out *string) bool {
	s, ok := v.(string)
	if !ok || s == "" {
		return false
	}
	*out = s
	return true
}
