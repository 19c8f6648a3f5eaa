package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"planora/models"
	"planora/services/matching"

	"github.com/gin-gonic/gin"
)

type stubMatchingService struct {
	gotEventID string
	gotFilters matching.Filters
	result     matching.MatchResult
}

func (s *stubMatchingService) MatchVendors(ctx context.Context, eventID string, filters matching.Filters) (matching.MatchResult, error) {
	s.gotEventID = eventID
	s.gotFilters = filters
	return s.result, nil
}

func buildVendorRouter(svc matching.MatchingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &VendorHandler{Service: svc}
	r.GET("/api/vendors", h.ListVendorsHandler)
	return r
}

func TestListVendorsParsesFilters(t *testing.T) {
	stub := &stubMatchingService{result: matching.MatchResult{Vendors: []models.Vendor{}}}
	r := buildVendorRouter(stub)

	req := httptest.NewRequest(http.MethodGet,
		"/api/vendors?category=Catering&minBudget=500&maxBudget=2000&minRating=4.5&eventId=e1&location=austin&search=jazz", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if stub.gotEventID != "e1" {
		t.Errorf("expected eventId e1, got %q", stub.gotEventID)
	}
	f := stub.gotFilters
	if f.Category != "Catering" || f.Location != "austin" || f.Search != "jazz" {
		t.Errorf("string filters not forwarded: %+v", f)
	}
	if f.MinBudget == nil || *f.MinBudget != 500 {
		t.Errorf("minBudget not parsed: %v", f.MinBudget)
	}
	if f.MaxBudget == nil || *f.MaxBudget != 2000 {
		t.Errorf("maxBudget not parsed: %v", f.MaxBudget)
	}
	if f.MinRating == nil || *f.MinRating != 4.5 {
		t.Errorf("minRating not parsed: %v", f.MinRating)
	}
}

func TestListVendorsCoercesInvalidNumbers(t *testing.T) {
	stub := &stubMatchingService{result: matching.MatchResult{Vendors: []models.Vendor{}}}
	r := buildVendorRouter(stub)

	// Non-numeric budget input deactivates the filter; the request must
	// still succeed.
	req := httptest.NewRequest(http.MethodGet, "/api/vendors?minBudget=abc&maxBudget=$$&minRating=five", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for malformed numeric input, got %d", resp.Code)
	}
	f := stub.gotFilters
	if f.MinBudget != nil || f.MaxBudget != nil || f.MinRating != nil {
		t.Errorf("invalid numeric input must deactivate filters: %+v", f)
	}
}

func TestListVendorsSurfacesBudgetHint(t *testing.T) {
	stub := &stubMatchingService{result: matching.MatchResult{
		Vendors:         []models.Vendor{},
		BudgetExhausted: true,
	}}
	r := buildVendorRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/vendors?eventId=e1", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body struct {
		BudgetExhausted bool   `json:"budgetExhausted"`
		Message         string `json:"message"`
		Count           int    `json:"count"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !body.BudgetExhausted {
		t.Error("budgetExhausted flag not surfaced")
	}
	if body.Message == "" {
		t.Error("expected a budget-adjustment hint message")
	}
	if body.Count != 0 {
		t.Errorf("expected count 0, got %d", body.Count)
	}
}
