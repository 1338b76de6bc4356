package tests

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	_ "modernc.org/sqlite"

	"github.com/brandonkimmmm/backend-coding-test/internal/app"
	"github.com/brandonkimmmm/backend-coding-test/internal/domain"
	"github.com/brandonkimmmm/backend-coding-test/internal/handler"
	"github.com/brandonkimmmm/backend-coding-test/internal/logger"
	"github.com/brandonkimmmm/backend-coding-test/internal/repository/sqlite"
	"github.com/brandonkimmmm/backend-coding-test/internal/service"
	"github.com/brandonkimmmm/backend-coding-test/internal/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter wires the full stack against a fresh in-memory
// database, exactly as cmd/server does minus New Relic.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(1)

	if err := sqlite.InitSchema(context.Background(), db); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	log := logger.NewNop()
	rideRepo := sqlite.NewRideRepository(db)
	rideService := service.NewRideService(rideRepo, log)
	rideHandler := handler.NewRideHandler(rideService, log)

	return app.NewRouter(app.RouterDeps{
		RideHandler: rideHandler,
		Logger:      log,
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()

	var resp handler.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error body %q: %v", w.Body.String(), err)
	}
	return resp
}

func mockRideBody() map[string]any {
	return map[string]any{
		"start_lat":      -70,
		"start_long":     -100,
		"end_lat":        89,
		"end_long":       -1,
		"rider_name":     "brandon",
		"driver_name":    "john",
		"driver_vehicle": "400z",
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "Healthy" {
		t.Errorf("expected body Healthy, got %q", w.Body.String())
	}
}

func TestUnknownPath_ReportsRequestError(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/nope/nothing", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	resp := decodeError(t, w)
	if resp.ErrorCode != handler.CodeRequestError {
		t.Errorf("expected REQUEST_ERROR, got %s", resp.ErrorCode)
	}
	if resp.Message != "Path /nope/nothing does not exist" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestGetRides_EmptyTable(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/rides", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	resp := decodeError(t, w)
	if resp.ErrorCode != handler.CodeRidesNotFound {
		t.Errorf("expected RIDES_NOT_FOUND_ERROR, got %s", resp.ErrorCode)
	}
	if resp.Message != "Could not find any rides" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestRideLifecycle_EndToEnd(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	// Create.
	w := doJSON(t, router, http.MethodPost, "/rides", mockRideBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created domain.Ride
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode created ride: %v", err)
	}
	if created.RideID != 1 {
		t.Errorf("expected rideID 1, got %d", created.RideID)
	}
	if created.Created == "" {
		t.Error("expected created timestamp to be set")
	}
	if created.StartLat != -70 || created.StartLong != -100 || created.EndLat != 89 || created.EndLong != -1 {
		t.Errorf("unexpected coordinates: %+v", created)
	}
	if created.RiderName != "brandon" || created.DriverName != "john" || created.DriverVehicle != "400z" {
		t.Errorf("unexpected names: %+v", created)
	}

	// Get by id returns the identical object.
	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/rides/%d", created.RideID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var fetched domain.Ride
	if err := json.Unmarshal(w.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("failed to decode fetched ride: %v", err)
	}
	if fetched != created {
		t.Errorf("expected %+v, got %+v", created, fetched)
	}

	// List returns {count:1, rows:[thatRide]}.
	w = doJSON(t, router, http.MethodGet, "/rides", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var page domain.RidesPage
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("failed to decode page: %v", err)
	}
	if page.Count != 1 || len(page.Rows) != 1 || *page.Rows[0] != created {
		t.Errorf("unexpected page: %+v", page)
	}

	// An unassigned id is a not-found outcome.
	w = doJSON(t, router, http.MethodGet, "/rides/999999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if resp := decodeError(t, w); resp.ErrorCode != handler.CodeRidesNotFound {
		t.Errorf("expected RIDES_NOT_FOUND_ERROR, got %s", resp.ErrorCode)
	}
}

func TestCreateRide_ValidationErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mutate  func(map[string]any)
		wantMsg string
	}{
		{
			name:    "latitude out of range",
			mutate:  func(b map[string]any) { b["start_lat"] = 91 },
			wantMsg: validation.MsgStartCoords,
		},
		{
			name:    "longitude out of range",
			mutate:  func(b map[string]any) { b["end_long"] = -181 },
			wantMsg: validation.MsgEndCoords,
		},
		{
			name:    "empty rider name",
			mutate:  func(b map[string]any) { b["rider_name"] = "" },
			wantMsg: validation.MsgRiderName,
		},
		{
			name:    "boolean driver vehicle",
			mutate:  func(b map[string]any) { b["driver_vehicle"] = true },
			wantMsg: validation.MsgDriverVehicle,
		},
		{
			name:    "missing driver name",
			mutate:  func(b map[string]any) { delete(b, "driver_name") },
			wantMsg: validation.MsgDriverName,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router := newTestRouter(t)
			body := mockRideBody()
			tc.mutate(body)

			w := doJSON(t, router, http.MethodPost, "/rides", body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}

			resp := decodeError(t, w)
			if resp.ErrorCode != handler.CodeValidationError {
				t.Errorf("expected VALIDATION_ERROR, got %s", resp.ErrorCode)
			}
			if resp.Message != tc.wantMsg {
				t.Errorf("expected message %q, got %q", tc.wantMsg, resp.Message)
			}
		})
	}
}

func TestCreateRide_MalformedBody(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/rides", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	resp := decodeError(t, w)
	if resp.ErrorCode != handler.CodeValidationError {
		t.Errorf("expected VALIDATION_ERROR, got %s", resp.ErrorCode)
	}
	if resp.Message != "Invalid request data" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestCreateRide_InjectionStoredVerbatim(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	payload := `'); DROP TABLE Rides; --`
	body := mockRideBody()
	body["driver_vehicle"] = payload

	w := doJSON(t, router, http.MethodPost, "/rides", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created domain.Ride
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode created ride: %v", err)
	}
	if created.DriverVehicle != payload {
		t.Errorf("expected payload stored verbatim, got %q", created.DriverVehicle)
	}

	// The table remains queryable afterwards.
	w = doJSON(t, router, http.MethodGet, "/rides", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 after injection attempt, got %d", w.Code)
	}
}

func TestGetRides_Pagination(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	for i := 0; i < 5; i++ {
		w := doJSON(t, router, http.MethodPost, "/rides", mockRideBody())
		if w.Code != http.StatusCreated {
			t.Fatalf("create %d failed: %d", i, w.Code)
		}
	}

	w := doJSON(t, router, http.MethodGet, "/rides?limit=2&page=2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var page domain.RidesPage
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("failed to decode page: %v", err)
	}
	if page.Count != 5 {
		t.Errorf("expected count 5, got %d", page.Count)
	}
	if len(page.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(page.Rows))
	}
	// Descending order, offset 2: ids 3 and 2.
	if page.Rows[0].RideID != 3 || page.Rows[1].RideID != 2 {
		t.Errorf("unexpected window: %d, %d", page.Rows[0].RideID, page.Rows[1].RideID)
	}

	// Bad pagination parameters are a validation error.
	w = doJSON(t, router, http.MethodGet, "/rides?limit=51", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if resp := decodeError(t, w); resp.Message != validation.MsgLimit {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestGetRide_MalformedID_API(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/rides/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if resp := decodeError(t, w); resp.Message != validation.MsgRideID {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestRequestID_EchoedAndGenerated(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	// A generated id is returned when the client sends none.
	w := doJSON(t, router, http.MethodGet, "/health", nil)
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected a generated X-Request-ID header")
	}

	// An inbound id is propagated untouched.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "test-correlation-id")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "test-correlation-id" {
		t.Errorf("expected propagated id, got %q", got)
	}
}
