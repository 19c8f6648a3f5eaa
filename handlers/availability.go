package handlers

import (
	"net/http"
	"strconv"

	"planora/models"
	"planora/services/availability"
	"planora/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves generated time slots for vendors.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

// GetSlotsHandler returns bookable slots for a vendor and appointment type.
// An empty list is a normal response; the payload carries a prompt so the
// client can suggest picking a different meeting type.
func (h *AvailabilityHandler) GetSlotsHandler(c *gin.Context) {
	vendorID := c.Param("id")
	if vendorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing vendor ID in path"})
		return
	}

	requested := models.AppointmentType(c.Query("type"))
	if !requested.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing appointment type; expected one of in_person, phone, virtual",
		})
		return
	}

	horizonDays := availability.DefaultHorizonDays
	if raw := c.Query("days"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			horizonDays = v
		}
	}

	slots, err := h.Service.GetSlots(vendorID, requested, horizonDays)
	if err != nil {
		utils.GetLogger().Warn("Failed to load vendor availability",
			zap.String("vendorId", vendorID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor availability not found"})
		return
	}

	resp := gin.H{"slots": slots, "count": len(slots)}
	if len(slots) == 0 {
		resp["message"] = "No slots available for this appointment type. Try a different type."
	}
	c.JSON(http.StatusOK, resp)
}
