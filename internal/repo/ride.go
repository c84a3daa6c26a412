// Package repo contains all database access logic for the Rides API.
// No business logic lives here — only SQL and type mapping. Every statement
// is parameterized; caller-controlled values never appear in SQL text.
package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tlcheah2/backend-coding-test/internal/domain"
)

// db is the minimal interface satisfied by both *sql.DB and *sql.Tx.
// Accepting this interface instead of *sql.DB directly allows integration
// tests to pass a transaction that is rolled back after each test, giving
// free per-test isolation without any manual cleanup.
type db interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// RideRepo defines the persistence operations for Rides.
// The service layer depends on this interface, not the concrete SQLite
// implementation, which allows the service to be unit-tested with a mock.
type RideRepo interface {
	// Insert persists a new ride and returns the store-assigned rideID.
	// The created timestamp is filled in by the database default.
	Insert(ctx context.Context, ride domain.Ride) (int64, error)

	// GetByID retrieves a single ride by its integer primary key.
	// Returns domain.ErrNotFound if no ride with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Ride, error)

	// List returns rides ordered by rideID ascending, applying limit and
	// offset for pagination. A limit of -1 means no limit (SQLite semantics).
	List(ctx context.Context, limit, offset int) ([]domain.Ride, error)
}

// sqliteRideRepo is the SQLite implementation of RideRepo.
type sqliteRideRepo struct {
	db db
}

// NewRideRepo constructs a RideRepo backed by the provided db handle.
// In production pass *sql.DB; in tests pass a *sql.Tx for rollback isolation.
func NewRideRepo(db db) RideRepo {
	return &sqliteRideRepo{db: db}
}

// Insert inserts a new ride row and returns the autoincremented rideID.
func (r *sqliteRideRepo) Insert(ctx context.Context, ride domain.Ride) (int64, error) {
	const q = `
		INSERT INTO Rides (startLat, startLong, endLat, endLong, riderName, driverName, driverVehicle)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, q,
		ride.StartLat,
		ride.StartLong,
		ride.EndLat,
		ride.EndLong,
		ride.RiderName,
		ride.DriverName,
		ride.DriverVehicle,
	)
	if err != nil {
		return 0, fmt.Errorf("repo.RideRepo.Insert: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("repo.RideRepo.Insert: last insert id: %w", err)
	}
	return id, nil
}

// GetByID retrieves a ride by primary key. The id is bound as a numeric
// parameter, so a crafted identifier string can never widen the match.
func (r *sqliteRideRepo) GetByID(ctx context.Context, id int64) (domain.Ride, error) {
	const q = `
		SELECT rideID, startLat, startLong, endLat, endLong, riderName, driverName, driverVehicle, created
		FROM Rides
		WHERE rideID = ?`

	row := r.db.QueryRowContext(ctx, q, id)
	ride, err := scanRide(row)
	if err != nil {
		return domain.Ride{}, fmt.Errorf("repo.RideRepo.GetByID: %w", err)
	}
	return ride, nil
}

// List returns a page of rides ordered by rideID ascending (creation order).
func (r *sqliteRideRepo) List(ctx context.Context, limit, offset int) ([]domain.Ride, error) {
	const q = `
		SELECT rideID, startLat, startLong, endLat, endLong, riderName, driverName, driverVehicle, created
		FROM Rides
		ORDER BY rideID
		LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("repo.RideRepo.List: %w", err)
	}
	defer rows.Close()

	var rides []domain.Ride
	for rows.Next() {
		ride, err := scanRide(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.RideRepo.List: scan: %w", err)
		}
		rides = append(rides, ride)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.RideRepo.List: rows: %w", err)
	}

	return rides, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows, allowing scanRide to
// be reused for both QueryRowContext and QueryContext calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanRide maps a single database row into a domain.Ride.
func scanRide(s scanner) (domain.Ride, error) {
	var ride domain.Ride
	err := s.Scan(
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
			return domain.Ride{}, domain.ErrNotFound
		}
		return domain.Ride{}, err
	}
	return ride, nil
}
