package handlers

import (
	"net/http"

	eventRepo "planora/database/repository/event"
	"planora/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EventHandler serves the mirrored event read model.
type EventHandler struct {
	Repo eventRepo.EventRepository
}

func (h *EventHandler) ListEventsHandler(c *gin.Context) {
	events, err := h.Repo.GetAll()
	if err != nil {
		utils.GetLogger().Error("Failed to list events", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load events", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}

func (h *EventHandler) GetEventByIDHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing event ID in path"})
		return
	}

	event, err := h.Repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, event)
}
