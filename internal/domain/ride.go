// Package domain contains the core data types for the Rides API.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

// Ride is the sole persisted entity: a trip request with start/end
// coordinates and named participants. Rides are immutable once created —
// there is no update or delete operation anywhere in the system.
//
// JSON field names match the database column names verbatim because API
// consumers receive rows as stored.
type Ride struct {
	RideID        int64   `json:"rideID"`
	StartLat      float64 `json:"startLat"`
	StartLong     float64 `json:"startLong"`
	EndLat        float64 `json:"endLat"`
	EndLong       float64 `json:"endLong"`
	RiderName     string  `json:"riderName"`
	DriverName    string  `json:"driverName"`
	DriverVehicle string  `json:"driverVehicle"`

	// Created is the store-assigned ISO-8601 creation timestamp. It is kept
	// as text rather than time.Time so the value round-trips byte-for-byte.
	Created string `json:"created"`
}

// CreateRideInput carries the raw, untyped fields of a create request.
// Every field is `any` on purpose: clients may send numbers as strings,
// omit fields, or send the wrong type entirely, and the validator must see
// exactly what arrived rather than what a typed decode would coerce it to.
type CreateRideInput struct {
	StartLat      any `json:"start_lat"`
	StartLong     any `json:"start_long"`
	EndLat        any `json:"end_lat"`
	EndLong       any `json:"end_long"`
	RiderName     any `json:"rider_name"`
	DriverName    any `json:"driver_name"`
	DriverVehicle any `json:"driver_vehicle"`
}
