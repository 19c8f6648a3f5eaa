package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"planora/models"
)

// Client talks to the upstream marketplace API that owns vendors, events,
// availability and appointment persistence.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an upstream API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream request %s returned status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode upstream response for %s: %w", path, err)
	}
	return nil
}

// FetchVendors retrieves the full vendor catalog.
func (c *Client) FetchVendors(ctx context.Context) ([]models.Vendor, error) {
	var vendors []models.Vendor
	if err := c.getJSON(ctx, "/vendors", &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

// FetchEvents retrieves all events visible to the service.
func (c *Client) FetchEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := c.getJSON(ctx, "/events", &events); err != nil {
		return nil, err
	}
	return events, nil
}

// FetchAvailability retrieves one vendor's weekly availability setup.
func (c *Client) FetchAvailability(ctx context.Context, vendorID string) (*models.VendorAvailability, error) {
	var availability models.VendorAvailability
	if err := c.getJSON(ctx, "/vendors/"+vendorID+"/availability", &availability); err != nil {
		return nil, err
	}
	availability.VendorID = vendorID
	return &availability, nil
}

// SubmitAppointment forwards a booking request upstream. The upstream side
// enforces double-booking prevention at commit time.
func (c *Client) SubmitAppointment(ctx context.Context, req models.AppointmentRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to encode appointment request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/appointments", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build appointment request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("appointment forward failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("appointment forward returned status %d", resp.StatusCode)
	}
	return nil
}
