// File: planora/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"planora/config"
	"planora/cron"
	"planora/database"
	availabilityRepoPkg "planora/database/repository/availability"
	eventRepoPkg "planora/database/repository/event"
	vendorRepoPkg "planora/database/repository/vendor"
	"planora/handlers"
	"planora/middleware"
	"planora/routes"
	"planora/services/availability"
	"planora/services/catalog"
	"planora/services/matching"
	"planora/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	vendorRepo := vendorRepoPkg.NewMongoVendorRepo()
	eventRepo := eventRepoPkg.NewMongoEventRepo()
	availabilityRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()

	// upstream client and catalog syncer.
	upstreamClient := catalog.NewClient(config.AppConfig.UpstreamAPIURL)
	syncer := &catalog.Syncer{
		Client:           upstreamClient,
		VendorRepo:       vendorRepo,
		EventRepo:        eventRepo,
		AvailabilityRepo: availabilityRepo,
		Cache:            utils.GetCacheClient(),
	}

	// services.
	matchingService := &matching.DefaultMatchingService{
		VendorRepo: vendorRepo,
		EventRepo:  eventRepo,
		Cache:      utils.GetCacheClient(),
	}
	availabilityService := &availability.DefaultAvailabilityService{
		AvailabilityRepo: availabilityRepo,
	}

	// task queue client for appointment forwarding.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()

	// handlers.
	vendorHandler := &handlers.VendorHandler{Service: matchingService, Repo: vendorRepo}
	availabilityHandler := &handlers.AvailabilityHandler{Service: availabilityService}
	appointmentHandler := &handlers.AppointmentHandler{
		Availability: availabilityService,
		Queue:        queueClient,
	}
	eventHandler := &handlers.EventHandler{Repo: eventRepo}
	wizardHandler := &handlers.WizardHandler{}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ListVendorsHandler:     vendorHandler.ListVendorsHandler,
		GetVendorByIDHandler:   vendorHandler.GetVendorByIDHandler,
		GetSlotsHandler:        availabilityHandler.GetSlotsHandler,
		BookAppointmentHandler: appointmentHandler.BookAppointmentHandler,
		ListEventsHandler:      eventHandler.ListEventsHandler,
		GetEventByIDHandler:    eventHandler.GetEventByIDHandler,
		GetWizardStepsHandler:  wizardHandler.GetWizardStepsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background worker: periodic catalog sync + appointment forwarding.
	cron.InitCatalogWorker(syncer, upstreamClient)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	logger.Info("Server exited")
}
