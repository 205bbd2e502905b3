package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"ebl-server/config"
	"ebl-server/models"
	"ebl-server/models/venue"
	services "ebl-server/service"
)

// stubGraphAPI counts outbound calls so tests can assert the pipeline never
// ran for rejected input.
type stubGraphAPI struct {
	mu          sync.Mutex
	searchCalls int
	batchCalls  int
	searchErr   error
}

func (s *stubGraphAPI) SearchPlaceIDs(lat, lng float64, distance, accessToken string) (*models.PlaceSearchResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchCalls++
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return &models.PlaceSearchResponse{Data: []models.PlaceRef{{ID: "111"}}}, nil
}

func (s *stubGraphAPI) GetVenuesWithEvents(placeIDs []string, since int64, accessToken string) (models.VenueBatchResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batchCalls++
	return models.VenueBatchResponse{
		"111": venue.Venue{
			ID:       "111",
			Name:     "Club Soda",
			Location: &venue.Location{Latitude: 45.5107, Longitude: -73.5642},
			Events: &venue.EventList{Data: []venue.Event{
				{ID: "e1", Name: "Jazz Night", StartTime: "2030-05-02T21:00:00-0400"},
			}},
		},
	}, nil
}

func newTestHandler(stub *stubGraphAPI, cfg *config.Config) *EventHandler {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return NewEventHandler(services.NewEventSearchService(stub), cfg)
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode error body %q: %v", rr.Body.String(), err)
	}
	return body["error"]
}

func TestSearchEvents_MissingLat(t *testing.T) {
	stub := &stubGraphAPI{}
	handler := newTestHandler(stub, nil)

	req := httptest.NewRequest("GET", "/events?lng=-73.55&distance=2500&access_token=token", nil)
	rr := httptest.NewRecorder()

	handler.SearchEvents(rr, req)

	// The original answered 500 for input errors; kept for compatibility.
	if rr.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", rr.Code)
	}
	if got := decodeError(t, rr); got != MISSING_PARAMS_MESSAGE {
		t.Errorf("Expected error %q, got %q", MISSING_PARAMS_MESSAGE, got)
	}
	// No outbound call may have been issued.
	if stub.searchCalls != 0 || stub.batchCalls != 0 {
		t.Errorf("Expected no outbound calls, got search=%d batch=%d", stub.searchCalls, stub.batchCalls)
	}
}

func TestSearchEvents_NonNumericLatRejected(t *testing.T) {
	stub := &stubGraphAPI{}
	handler := newTestHandler(stub, nil)

	req := httptest.NewRequest("GET", "/events?lat=abc&lng=-73.55&distance=2500&access_token=token", nil)
	rr := httptest.NewRecorder()

	handler.SearchEvents(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", rr.Code)
	}
	if stub.searchCalls != 0 {
		t.Errorf("Expected no outbound calls, got %d", stub.searchCalls)
	}
}

func TestSearchEvents_MissingTokenWithoutFallback(t *testing.T) {
	stub := &stubGraphAPI{}
	handler := newTestHandler(stub, nil)

	req := httptest.NewRequest("GET", "/events?lat=45.52&lng=-73.55&distance=2500", nil)
	rr := httptest.NewRecorder()

	handler.SearchEvents(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", rr.Code)
	}
	if got := decodeError(t, rr); got != MISSING_PARAMS_MESSAGE {
		t.Errorf("Expected error %q, got %q", MISSING_PARAMS_MESSAGE, got)
	}
}

func TestSearchEvents_EnvTokenFallback(t *testing.T) {
	stub := &stubGraphAPI{}
	handler := newTestHandler(stub, &config.Config{AccessToken: "env-token"})

	req := httptest.NewRequest("GET", "/events?lat=45.52&lng=-73.55&distance=2500", nil)
	rr := httptest.NewRecorder()

	handler.SearchEvents(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if stub.searchCalls != 1 {
		t.Errorf("Expected 1 place search call, got %d", stub.searchCalls)
	}
}

func TestSearchEvents_Success(t *testing.T) {
	stub := &stubGraphAPI{}
	handler := newTestHandler(stub, nil)

	req := httptest.NewRequest("GET", "/events?lat=45.52&lng=-73.55&distance=2500&access_token=token&sort=time", nil)
	rr := httptest.NewRecorder()

	handler.SearchEvents(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Expected Content-Type application/json, got %s", got)
	}

	var response models.EventSearchResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	wantMeta := models.SearchMetadata{Venues: 1, VenuesWithEvents: 1, Events: 1}
	if response.Metadata != wantMeta {
		t.Errorf("Metadata = %+v, want %+v", response.Metadata, wantMeta)
	}
	if len(response.Events) != 1 || response.Events[0].EventName != "Jazz Night" {
		t.Errorf("Unexpected events: %+v", response.Events)
	}
}

func TestSearchEvents_UpstreamFailure(t *testing.T) {
	stub := &stubGraphAPI{searchErr: errors.New("Invalid OAuth access token.")}
	handler := newTestHandler(stub, nil)

	req := httptest.NewRequest("GET", "/events?lat=45.52&lng=-73.55&distance=2500&access_token=bad", nil)
	rr := httptest.NewRecorder()

	handler.SearchEvents(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", rr.Code)
	}
	if got := decodeError(t, rr); got == "" {
		t.Errorf("Expected a failure description in the error body, got %q", rr.Body.String())
	}
}

func TestHealth(t *testing.T) {
	handler := newTestHandler(&stubGraphAPI{}, nil)

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()

	handler.Health(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}
	if rr.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got %q", rr.Body.String())
	}
}
