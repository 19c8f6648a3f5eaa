package handlers

import (
	"net/http"
	"strconv"

	"planora/services/wizard"

	"github.com/gin-gonic/gin"
)

// WizardHandler exposes the event-creation step sequence for a given form state.
type WizardHandler struct{}

// GetWizardStepsHandler computes the active wizard steps. Query params mirror
// the form state; anything unparsable falls back to the zero value.
func (h *WizardHandler) GetWizardStepsHandler(c *gin.Context) {
	state := wizard.FormState{
		EventType:    c.Query("eventType"),
		Budget:       parseOptionalFloat(c.Query("budget")),
		WantsLoan:    c.Query("wantsLoan") == "true",
		RemoteGuests: c.Query("remoteGuests") == "true",
	}
	if raw := c.Query("guestCount"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			state.GuestCount = v
		}
	}

	steps := wizard.ActiveSteps(wizard.DefaultSteps(), state)
	c.JSON(http.StatusOK, gin.H{"steps": steps, "count": len(steps)})
}
