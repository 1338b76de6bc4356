package domain

// Ride represents a single persisted trip request. A ride is immutable
// once created: no update or delete operation is exposed by the
// service.
type Ride struct {
	RideID        int64   `json:"rideID"`
	StartLat      float64 `json:"startLat"`
	StartLong     float64 `json:"startLong"`
	EndLat        float64 `json:"endLat"`
	EndLong       float64 `json:"endLong"`
	RiderName     string  `json:"riderName"`
	DriverName    string  `json:"driverName"`
	DriverVehicle string  `json:"driverVehicle"`
	// Created is assigned by the database at insert time
	// (CURRENT_TIMESTAMP) and surfaced as the engine's text timestamp.
	Created string `json:"created"`
}

// NewRide holds the validated fields of a ride about to be inserted.
// RideID and Created are assigned by the persistence layer.
type NewRide struct {
	StartLat      float64
	StartLong     float64
	EndLat        float64
	EndLong       float64
	RiderName     string
	DriverName    string
	DriverVehicle string
}

// RidesPage is one window of the rideID-descending result set together
// with the total row count across the whole table.
type RidesPage struct {
	Count int64   `json:"count"`
	Rows  []*Ride `json:"rows"`
}
