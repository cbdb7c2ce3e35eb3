package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/jusunglee/pathboard/internal/models"
	"github.com/jusunglee/pathboard/internal/store"
)

// MockClient implements path.Client for testing
type MockClient struct {
	snapshot models.Snapshot
	hasData  bool
	live     bool
}

func (m *MockClient) Latest() (models.Snapshot, bool) {
	return m.snapshot, m.hasData
}

func (m *MockClient) Status(now time.Time) store.Status {
	return store.Status{Live: m.live, HasData: m.hasData}
}

func (m *MockClient) LastUpdate() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func testRouter(client *MockClient) *mux.Router {
	r := mux.NewRouter()
	NewHandler(client).RegisterRoutes(r)
	return r
}

func TestHandleArrivals(t *testing.T) {
	client := &MockClient{
		hasData: true,
		live:    true,
		snapshot: models.Snapshot{Messages: []models.TrainMessage{
			{Target: "33S", Headsign: "33rd Street", SecondsToArrival: 120},
			{Target: "NWK", Headsign: "World Trade Center", SecondsToArrival: 300},
		}},
	}
	r := testRouter(client)

	req := httptest.NewRequest("GET", "/arrivals", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200", w.Code)
	}

	var resp struct {
		Data []models.TrainMessage `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Errorf("Expected 2 arrivals, got %d", len(resp.Data))
	}
}

func TestHandleArrivalsLimit(t *testing.T) {
	client := &MockClient{
		hasData: true,
		snapshot: models.Snapshot{Messages: []models.TrainMessage{
			{Target: "33S", SecondsToArrival: 120},
			{Target: "NWK", SecondsToArrival: 300},
		}},
	}
	r := testRouter(client)

	req := httptest.NewRequest("GET", "/arrivals?limit=1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp struct {
		Data []models.TrainMessage `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Data) != 1 {
		t.Errorf("Expected 1 arrival with limit=1, got %d", len(resp.Data))
	}

	// Bad limit is a client error
	req = httptest.NewRequest("GET", "/arrivals?limit=abc", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Status = %d, want 400 for bad limit", w.Code)
	}
}

func TestHandleArrivalsNoData(t *testing.T) {
	r := testRouter(&MockClient{})

	req := httptest.NewRequest("GET", "/arrivals", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Status = %d, want 503 before first fetch", w.Code)
	}
}

func TestHandleStatus(t *testing.T) {
	r := testRouter(&MockClient{hasData: true, live: true})

	req := httptest.NewRequest("GET", "/status", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200", w.Code)
	}

	var resp struct {
		Data    store.Status `json:"data"`
		Updated string       `json:"updated"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Data.Live {
		t.Error("Expected live=true")
	}
	if resp.Updated == "" {
		t.Error("Expected updated timestamp")
	}
}
