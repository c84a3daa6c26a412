package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tlcheah2/backend-coding-test/internal/domain"
)

// CreateRide handles POST /rides.
// On success it responds with a one-element array containing the created row
// as re-read from the store. Validation failures and store failures both
// respond HTTP 200 with an error payload — only a body that cannot be decoded
// as JSON is rejected at the transport level with 400.
func (s *Server) CreateRide(w http.ResponseWriter, r *http.Request) {
	var input domain.CreateRideInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			ErrorCode: codeValidationError,
			Message:   "Invalid JSON body",
		})
		return
	}

	created, err := s.rides.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeJSON(w, http.StatusOK, validationBody(err))
			return
		}
		slog.ErrorContext(r.Context(), "create ride", "error", err)
		writeJSON(w, http.StatusOK, serverErrorBody())
		return
	}

	slog.InfoContext(r.Context(), "created ride", "ride_id", created.RideID)
	writeJSON(w, http.StatusOK, []domain.Ride{created})
}

// ListRides handles GET /rides.
// Both limit and offset query parameters must parse as integers; an empty
// page is reported as RIDES_NOT_FOUND_ERROR rather than an empty array.
func (s *Server) ListRides(w http.ResponseWriter, r *http.Request) {
	limit, limitErr := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, offsetErr := strconv.Atoi(r.URL.Query().Get("offset"))
	if limitErr != nil || offsetErr != nil {
		writeJSON(w, http.StatusOK, errorResponse{
			ErrorCode: codeValidationError,
			Message:   "Offset or Limit must be a number",
		})
		return
	}

	rides, err := s.rides.List(r.Context(), limit, offset)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusOK, notFoundBody())
			return
		}
		slog.ErrorContext(r.Context(), "list rides", "error", err)
		writeJSON(w, http.StatusOK, serverErrorBody())
		return
	}

	writeJSON(w, http.StatusOK, rides)
}

// GetRide handles GET /rides/{id}.
// A present result is returned as a one-element array, preserving the shape
// of the list endpoint. The identifier is compared as a number: an id that
// does not parse can never match a store-assigned integer key, so it
// short-circuits to the not-found payload without touching the store. This
// is also what makes the path immune to SQL injection.
func (s *Server) GetRide(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusOK, notFoundBody())
		return
	}

	ride, err := s.rides.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusOK, notFoundBody())
			return
		}
		slog.ErrorContext(r.Context(), "get ride", "ride_id", id, "error", err)
		writeJSON(w, http.StatusOK, serverErrorBody())
		return
	}

	writeJSON(w, http.StatusOK, []domain.Ride{ride})
}
