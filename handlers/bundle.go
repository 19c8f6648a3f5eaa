// File: planora/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Vendor endpoints
	ListVendorsHandler   gin.HandlerFunc
	GetVendorByIDHandler gin.HandlerFunc

	// Availability endpoints
	GetSlotsHandler gin.HandlerFunc

	// Appointment endpoints
	BookAppointmentHandler gin.HandlerFunc

	// Event endpoints
	ListEventsHandler   gin.HandlerFunc
	GetEventByIDHandler gin.HandlerFunc

	// Wizard endpoints
	GetWizardStepsHandler gin.HandlerFunc
}
