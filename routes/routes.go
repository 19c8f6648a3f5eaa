package routes

import (
	"net/http"
	"time"

	"planora/handlers"
	"planora/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterVendorRoutes registers vendor catalog and availability endpoints.
func RegisterVendorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/vendors")
	{
		api.GET("", hb.ListVendorsHandler)
		api.GET("/:id", hb.GetVendorByIDHandler)
		api.GET("/:id/slots", hb.GetSlotsHandler)
		api.POST("/:id/appointments", hb.BookAppointmentHandler)
	}
}

// RegisterEventRoutes registers the mirrored event endpoints.
func RegisterEventRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/events")
	{
		api.GET("", hb.ListEventsHandler)
		api.GET("/:id", hb.GetEventByIDHandler)
	}
}

// RegisterWizardRoutes registers the event-creation wizard endpoint.
func RegisterWizardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/wizard")
	{
		api.GET("/steps", hb.GetWizardStepsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterVendorRoutes(r, hb)
	RegisterEventRoutes(r, hb)
	RegisterWizardRoutes(r, hb)
	RegisterHealthRoute(r)
}
