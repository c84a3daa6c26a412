// Package handler implements the HTTP handlers for the Rides API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, ride.go, docs.go) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tlcheah2/backend-coding-test/internal/domain"
)

// RideServicer defines the business operations the ride handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type RideServicer interface {
	Create(ctx context.Context, input domain.CreateRideInput) (domain.Ride, error)
	GetByID(ctx context.Context, id int64) (domain.Ride, error)
	List(ctx context.Context, limit, offset int) ([]domain.Ride, error)
}

// Server implements the HTTP handlers for all API endpoints.
// Wire it in main.go via Routes().
type Server struct {
	rides RideServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(rides RideServicer) *Server {
	return &Server{rides: rides}
}

// Routes returns the router with every API endpoint registered.
// Cross-cutting middleware (request IDs, logging, CORS, body limits) is the
// caller's responsibility — main.go applies it around this router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", s.GetHealth)
	r.Post("/rides", s.CreateRide)
	r.Get("/rides", s.ListRides)
	r.Get("/rides/{id}", s.GetRide)
	r.Get("/openapi.yaml", s.GetOpenAPISpec)
	r.Get("/docs", s.GetDocs)

	return r
}
