// Package service contains the business logic for the Rides API.
// The service validates inputs, enforces the request contract, and
// orchestrates repo calls. No SQL lives here — the service depends on repo
// interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/tlcheah2/backend-coding-test/internal/domain"
	"github.com/tlcheah2/backend-coding-test/internal/repo"
)

// Validation messages are part of the published API contract and must not be
// reworded. The rider-name message is reused verbatim for the driver name and
// driver vehicle checks: existing consumers match on these exact strings.
const (
	msgStartCoords = "Start latitude and longitude must be between -90 - 90 and -180 to 180 degrees respectively"
	msgEndCoords   = "End latitude and longitude must be between -90 - 90 and -180 to 180 degrees respectively"
	msgName        = "Rider name must be a non empty string"
)

// RideService implements business logic for Ride operations.
type RideService struct {
	repo repo.RideRepo
}

// NewRideService constructs a RideService backed by the provided RideRepo.
func NewRideService(r repo.RideRepo) *RideService {
	return &RideService{repo: r}
}

// Create validates and persists a new ride, then re-reads it by the
// store-assigned rideID so the caller receives the row exactly as persisted
// (including the database-generated created timestamp).
//
// The re-read cannot race with another create: rideIDs are assigned
// monotonically and never reused, so the row fetched here is always the row
// inserted here.
func (s *RideService) Create(ctx context.Context, input domain.CreateRideInput) (domain.Ride, error) {
	ride, err := validateCreateRide(input)
	if err != nil {
		return domain.Ride{}, err
	}

	id, err := s.repo.Insert(ctx, ride)
	if err != nil {
		return domain.Ride{}, fmt.Errorf("service.RideService.Create: %w", err)
	}

	created, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Ride{}, fmt.Errorf("service.RideService.Create: re-read ride %d: %w", id, err)
	}
	return created, nil
}

// List returns a page of rides ordered by rideID ascending.
// A page with zero rides is reported as domain.ErrNotFound rather than an
// empty slice — the API contract treats an empty result as an error payload.
func (s *RideService) List(ctx context.Context, limit, offset int) ([]domain.Ride, error) {
	rides, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("service.RideService.List: %w", err)
	}
	if len(rides) == 0 {
		return nil, fmt.Errorf("service.RideService.List: %w", domain.ErrNotFound)
	}
	return rides, nil
}

// GetByID returns a single ride by its store-assigned identifier.
func (s *RideService) GetByID(ctx context.Context, id int64) (domain.Ride, error) {
	ride, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Ride{}, fmt.Errorf("service.RideService.GetByID: %w", err)
	}
	return ride, nil
}

// validateCreateRide checks the untyped input against the rules of the create
// contract, in fixed order, stopping at the first violation. It never reports
// more than one error at a time.
//
// Rule order: start coordinates, end coordinates, rider name, driver name,
// driver vehicle.
func validateCreateRide(input domain.CreateRideInput) (domain.Ride, error) {
	startLat := toNumber(input.StartLat)
	startLong := toNumber(input.StartLong)
	endLat := toNumber(input.EndLat)
	endLong := toNumber(input.EndLong)

	if outOfRange(startLat, 90) || outOfRange(startLong, 180) {
		return domain.Ride{}, validationError(msgStartCoords)
	}
	if outOfRange(endLat, 90) || outOfRange(endLong, 180) {
		return domain.Ride{}, validationError(msgEndCoords)
	}

	riderName, ok := nonEmptyString(input.RiderName)
	if !ok {
		return domain.Ride{}, validationError(msgName)
	}
	driverName, ok := nonEmptyString(input.DriverName)
	if !ok {
		return domain.Ride{}, validationError(msgName)
	}
	driverVehicle, ok := nonEmptyString(input.DriverVehicle)
	if !ok {
		return domain.Ride{}, validationError(msgName)
	}

	return domain.Ride{
		StartLat:      startLat,
		StartLong:     startLong,
		EndLat:        endLat,
		EndLong:       endLong,
		RiderName:     riderName,
		DriverName:    driverName,
		DriverVehicle: driverVehicle,
	}, nil
}

// validationError wraps a contract message in domain.ErrValidation so
// handlers can both detect the kind (errors.Is) and recover the exact
// message for the response payload.
func validationError(msg string) error {
	return fmt.Errorf("%w: %s", domain.ErrValidation, msg)
}

// toNumber coerces an arbitrary JSON value to a float64.
// JSON numbers decode as float64 and pass through; numeric strings are
// parsed. Everything else — absent fields, null, booleans, objects,
// non-numeric strings — coerces to NaN, which outOfRange treats as a range
// violation.
func toNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// outOfRange reports whether v lies outside [-bound, bound].
// NaN is out of range: a coordinate that failed numeric coercion must fail
// its range check rather than slip through a comparison that is false on NaN.
func outOfRange(v, bound float64) bool {
	return math.IsNaN(v) || v < -bound || v > bound
}

// nonEmptyString reports whether v is a string of length >= 1.
// A value of any other type fails, even if it could be stringified.
func nonEmptyString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || len(s) < 1 {
		return "", false
	}
	return s, true
}
