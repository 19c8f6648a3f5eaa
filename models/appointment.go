package models

import "time"

// AppointmentRequest is a client's booking submission for a generated slot.
// The upstream marketplace owns appointment persistence; this service only
// validates the slot and forwards the request.
type AppointmentRequest struct {
	ID          string          `json:"id"`
	VendorID    string          `json:"vendorId"`
	EventID     string          `json:"eventId,omitempty"`
	Type        AppointmentType `json:"type"`
	Start       time.Time       `json:"start"`
	ClientName  string          `json:"clientName"`
	ClientEmail string          `json:"clientEmail"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// BookAppointmentRequest defines the payload for submitting a booking.
type BookAppointmentRequest struct {
	EventID     string          `json:"eventId"`
	Type        AppointmentType `json:"type" binding:"required"`
	Start       time.Time       `json:"start" binding:"required"`
	ClientName  string          `json:"clientName" binding:"required"`
	ClientEmail string          `json:"clientEmail" binding:"required,email"`
	Notes       string          `json:"notes"`
}
