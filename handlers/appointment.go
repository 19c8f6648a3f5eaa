package handlers

import (
	"net/http"
	"time"

	"planora/models"
	"planora/services/availability"
	"planora/services/tasks"
	"planora/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// AppointmentHandler accepts booking submissions, validates the requested
// slot against the freshly generated list and forwards the request upstream.
type AppointmentHandler struct {
	Availability availability.AvailabilityService
	Queue        *asynq.Client
}

func (h *AppointmentHandler) BookAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	vendorID := c.Param("id")
	if vendorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing vendor ID in path"})
		return
	}

	var req models.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid appointment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	if !req.Type.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment type; expected one of in_person, phone, virtual",
		})
		return
	}

	ok, err := h.Availability.ValidateSlot(vendorID, req.Type, req.Start)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor availability not found"})
		return
	}
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "Requested slot is not currently bookable"})
		return
	}

	appointment := models.AppointmentRequest{
		ID:          uuid.NewString(),
		VendorID:    vendorID,
		EventID:     req.EventID,
		Type:        req.Type,
		Start:       req.Start,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		Notes:       req.Notes,
		CreatedAt:   time.Now(),
	}

	task, opts, err := tasks.NewForwardAppointmentTask(appointment)
	if err != nil {
		logger.Error("Failed to build forward task", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to submit appointment", err.Error())
		return
	}
	if _, err := h.Queue.Enqueue(task, opts...); err != nil {
		logger.Error("Failed to enqueue forward task", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to submit appointment", err.Error())
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message":     "Appointment request submitted",
		"requestId":   appointment.ID,
		"appointment": appointment,
	})
}
