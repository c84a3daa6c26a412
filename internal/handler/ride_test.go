package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlcheah2/backend-coding-test/internal/domain"
	"github.com/tlcheah2/backend-coding-test/internal/handler"
)

// mockRideServicer is a test double for handler.RideServicer.
// Set only the method fields your test needs.
type mockRideServicer struct {
	create  func(ctx context.Context, input domain.CreateRideInput) (domain.Ride, error)
	getByID func(ctx context.Context, id int64) (domain.Ride, error)
	list    func(ctx context.Context, limit, offset int) ([]domain.Ride, error)
}

func (m *mockRideServicer) Create(ctx context.Context, input domain.CreateRideInput) (domain.Ride, error) {
	return m.create(ctx, input)
}
func (m *mockRideServicer) GetByID(ctx context.Context, id int64) (domain.Ride, error) {
	return m.getByID(ctx, id)
}
func (m *mockRideServicer) List(ctx context.Context, limit, offset int) ([]domain.Ride, error) {
	return m.list(ctx, limit, offset)
}

// compile-time check: mockRideServicer must satisfy handler.RideServicer.
var _ handler.RideServicer = (*mockRideServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mock into the chi router,
// mirroring exactly how main.go wires it in production.
func newHTTPHandler(svc handler.RideServicer) http.Handler {
	return handler.NewServer(svc).Routes()
}

func rideFixture() domain.Ride {
	return domain.Ride{
		RideID:        1,
		StartLat:      88,
		StartLong:     120,
		EndLat:        85,
		EndLong:       114,
		RiderName:     "Tek",
		DriverName:    "Tek",
		DriverVehicle: "ABC1234",
		Created:       "2024-01-01 00:00:00",
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) (code, message string) {
	t.Helper()
	var body struct {
		ErrorCode string `json:"error_code"`
		Message   string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.ErrorCode, body.Message
}

// ---- POST /rides -----------------------------------------------------------

func TestCreateRide_200_returnsOneElementArray(t *testing.T) {
	fixture := rideFixture()
	svc := &mockRideServicer{
		create: func(_ context.Context, _ domain.CreateRideInput) (domain.Ride, error) {
			return fixture, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"start_lat": 88, "start_long": 120,
		"end_lat": 85, "end_long": 114,
		"rider_name": "Tek", "driver_name": "Tek", "driver_vehicle": "ABC1234",
	})
	req := httptest.NewRequest(http.MethodPost, "/rides", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []domain.Ride
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1, "created ride is wrapped in a one-element array")
	assert.Equal(t, fixture, resp[0])
}

func TestCreateRide_passesRawFieldsToService(t *testing.T) {
	var got domain.CreateRideInput
	svc := &mockRideServicer{
		create: func(_ context.Context, input domain.CreateRideInput) (domain.Ride, error) {
			got = input
			return rideFixture(), nil
		},
	}

	// Deliberately mixed types: the handler must not coerce anything.
	body := jsonBody(t, map[string]any{
		"start_lat": "88", "start_long": 120,
		"rider_name": 42,
	})
	req := httptest.NewRequest(http.MethodPost, "/rides", body)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, "88", got.StartLat)
	assert.Equal(t, float64(120), got.StartLong)
	assert.Equal(t, float64(42), got.RiderName)
	assert.Nil(t, got.EndLat, "absent fields stay nil")
}

func TestCreateRide_200_validationErrorPayload(t *testing.T) {
	svc := &mockRideServicer{
		create: func(_ context.Context, _ domain.CreateRideInput) (domain.Ride, error) {
			return domain.Ride{}, fmt.Errorf("%w: %s", domain.ErrValidation,
				"Start latitude and longitude must be between -90 - 90 and -180 to 180 degrees respectively")
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/rides", jsonBody(t, map[string]any{"start_lat": 98}))
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	// Validation errors still answer 200 — the error_code field is the signal.
	assert.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t,
		`{"error_code":"VALIDATION_ERROR","message":"Start latitude and longitude must be between -90 - 90 and -180 to 180 degrees respectively"}`,
		rec.Body.String())
}

func TestCreateRide_200_serverErrorPayload(t *testing.T) {
	svc := &mockRideServicer{
		create: func(_ context.Context, _ domain.CreateRideInput) (domain.Ride, error) {
			return domain.Ride{}, errors.New("database is locked")
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/rides", jsonBody(t, map[string]any{}))
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	code, message := decodeErrorBody(t, rec)
	assert.Equal(t, "SERVER_ERROR", code)
	assert.Equal(t, "Unknown error", message)
}

func TestCreateRide_400_malformedJSON(t *testing.T) {
	svc := &mockRideServicer{
		create: func(_ context.Context, _ domain.CreateRideInput) (domain.Ride, error) {
			t.Fatal("service must not be called for an undecodable body")
			return domain.Ride{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/rides", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	code, _ := decodeErrorBody(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", code)
}

// ---- GET /rides ------------------------------------------------------------

func TestListRides_200_returnsPage(t *testing.T) {
	svc := &mockRideServicer{
		list: func(_ context.Context, limit, offset int) ([]domain.Ride, error) {
			assert.Equal(t, 10, limit)
			assert.Equal(t, 5, offset)
			return []domain.Ride{rideFixture()}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/rides?limit=10&offset=5", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []domain.Ride
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, int64(1), resp[0].RideID)
}

func TestListRides_200_nonNumericParams(t *testing.T) {
	cases := []struct {
		name   string
		target string
	}{
		{"limit not a number", "/rides?limit=abc&offset=0"},
		{"offset not a number", "/rides?limit=10&offset=abc"},
		{"limit missing", "/rides?offset=0"},
		{"both missing", "/rides"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockRideServicer{
				list: func(context.Context, int, int) ([]domain.Ride, error) {
					t.Fatal("service must not be called when params fail to parse")
					return nil, nil
				},
			}

			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rec := httptest.NewRecorder()

			newHTTPHandler(svc).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			require.JSONEq(t,
				`{"error_code":"VALIDATION_ERROR","message":"Offset or Limit must be a number"}`,
				rec.Body.String())
		})
	}
}

func TestListRides_200_emptyPageIsNotFoundPayload(t *testing.T) {
	svc := &mockRideServicer{
		list: func(context.Context, int, int) ([]domain.Ride, error) {
			return nil, fmt.Errorf("service.RideService.List: %w", domain.ErrNotFound)
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/rides?limit=10&offset=0", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t,
		`{"error_code":"RIDES_NOT_FOUND_ERROR","message":"Could not find any rides"}`,
		rec.Body.String())
}

// ---- GET /rides/{id} -------------------------------------------------------

func TestGetRide_200_returnsOneElementArray(t *testing.T) {
	fixture := rideFixture()
	svc := &mockRideServicer{
		getByID: func(_ context.Context, id int64) (domain.Ride, error) {
			assert.Equal(t, int64(1), id)
			return fixture, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/rides/1", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []domain.Ride
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, fixture, resp[0])
}

func TestGetRide_200_missingRideIsNotFoundPayload(t *testing.T) {
	svc := &mockRideServicer{
		getByID: func(context.Context, int64) (domain.Ride, error) {
			return domain.Ride{}, fmt.Errorf("service.RideService.GetByID: %w", domain.ErrNotFound)
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/rides/99", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	code, _ := decodeErrorBody(t, rec)
	assert.Equal(t, "RIDES_NOT_FOUND_ERROR", code)
}

func TestGetRide_200_nonNumericIDShortCircuitsToNotFound(t *testing.T) {
	svc := &mockRideServicer{
		getByID: func(context.Context, int64) (domain.Ride, error) {
			t.Fatal("service must not be called for a non-numeric id")
			return domain.Ride{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/rides/1%20OR%20rideID%20=%202", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	code, _ := decodeErrorBody(t, rec)
	assert.Equal(t, "RIDES_NOT_FOUND_ERROR", code)
}

// ---- docs ------------------------------------------------------------------

func TestGetOpenAPISpec_servesEmbeddedDocument(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "openapi: 3.0.0")
	assert.Contains(t, rec.Body.String(), "/rides/{id}")
}

func TestGetDocs_servesReferenceUI(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/docs", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "/openapi.yaml")
}
