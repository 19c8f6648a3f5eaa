package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"planora/models"
	"planora/services/availability"

	"github.com/gin-gonic/gin"
)

type stubAvailabilityService struct {
	slots      []models.TimeSlot
	err        error
	gotVendor  string
	gotType    models.AppointmentType
	gotHorizon int
}

func (s *stubAvailabilityService) GetSlots(vendorID string, requested models.AppointmentType, horizonDays int) ([]models.TimeSlot, error) {
	s.gotVendor = vendorID
	s.gotType = requested
	s.gotHorizon = horizonDays
	return s.slots, s.err
}

func (s *stubAvailabilityService) ValidateSlot(vendorID string, requested models.AppointmentType, start time.Time) (bool, error) {
	for _, slot := range s.slots {
		if slot.Start.Equal(start) {
			return true, nil
		}
	}
	return false, s.err
}

func buildSlotsRouter(svc availability.AvailabilityService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &AvailabilityHandler{Service: svc}
	r.GET("/api/vendors/:id/slots", h.GetSlotsHandler)
	return r
}

func TestGetSlotsRejectsInvalidType(t *testing.T) {
	r := buildSlotsRouter(&stubAvailabilityService{})

	for _, q := range []string{"", "?type=carrier_pigeon"} {
		req := httptest.NewRequest(http.MethodGet, "/api/vendors/v1/slots"+q, nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		if resp.Code != http.StatusBadRequest {
			t.Errorf("query %q: expected 400, got %d", q, resp.Code)
		}
	}
}

func TestGetSlotsReturnsSlots(t *testing.T) {
	start := time.Date(2026, time.August, 31, 9, 0, 0, 0, time.UTC)
	stub := &stubAvailabilityService{slots: []models.TimeSlot{
		{Start: start, DateLabel: "Monday, Aug 31", TimeLabel: "9:00 AM"},
	}}
	r := buildSlotsRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/vendors/v1/slots?type=phone&days=7", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if stub.gotVendor != "v1" || stub.gotType != models.AppointmentPhone || stub.gotHorizon != 7 {
		t.Errorf("service called with %q %q %d", stub.gotVendor, stub.gotType, stub.gotHorizon)
	}

	var body struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Count != 1 {
		t.Errorf("expected 1 slot, got %d", body.Count)
	}
}

func TestGetSlotsEmptyCarriesPrompt(t *testing.T) {
	r := buildSlotsRouter(&stubAvailabilityService{slots: []models.TimeSlot{}})

	req := httptest.NewRequest(http.MethodGet, "/api/vendors/v1/slots?type=virtual", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("empty slots is not an error, got %d", resp.Code)
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Message == "" {
		t.Error("expected a prompt to pick a different appointment type")
	}
}

func TestGetSlotsInvalidDaysFallsBack(t *testing.T) {
	stub := &stubAvailabilityService{slots: []models.TimeSlot{}}
	r := buildSlotsRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/vendors/v1/slots?type=phone&days=soon", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if stub.gotHorizon != availability.DefaultHorizonDays {
		t.Errorf("expected default horizon %d, got %d", availability.DefaultHorizonDays, stub.gotHorizon)
	}
}

func TestGetSlotsUnknownVendor(t *testing.T) {
	stub := &stubAvailabilityService{err: fmt.Errorf("vendor availability not found")}
	r := buildSlotsRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/vendors/missing/slots?type=phone", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown vendor, got %d", resp.Code)
	}
}
