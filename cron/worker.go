package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"planora/config"
	"planora/models"
	"planora/services/catalog"
	"planora/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitCatalogWorker runs the async worker and the periodic catalog sync
// scheduler in background.
func InitCatalogWorker(syncer *catalog.Syncer, client *catalog.Client) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeCatalogSync, handleCatalogSyncTask(syncer))
	mux.HandleFunc(tasks.TypeForwardAppointment, handleForwardAppointmentTask(client))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[CatalogWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[CatalogWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[CatalogWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	go runSyncScheduler(redisOpts)
}

// runSyncScheduler enqueues the catalog sync task on a fixed interval.
func runSyncScheduler(redisOpts asynq.RedisClientOpt) {
	interval := config.AppConfig.CatalogSyncMinutes
	if interval <= 0 {
		interval = 15
	}

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{})
	spec := fmt.Sprintf("@every %dm", interval)
	if _, err := scheduler.Register(spec, tasks.NewCatalogSyncTask()); err != nil {
		log.Printf("[CatalogWorker] Failed to register sync schedule: %v", err)
		return
	}
	if err := scheduler.Run(); err != nil {
		log.Printf("[CatalogWorker] Scheduler stopped: %v", err)
	}
}

func handleCatalogSyncTask(syncer *catalog.Syncer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		log.Println("[CatalogSync] Refreshing catalog mirror from upstream")
		if err := syncer.Sync(ctx); err != nil {
			log.Printf("[CatalogSync] Sync failed: %v", err)
			return err
		}
		return nil
	}
}

func handleForwardAppointmentTask(client *catalog.Client) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var req models.AppointmentRequest
		if err := json.Unmarshal(task.Payload(), &req); err != nil {
			log.Printf("[AppointmentForward] Invalid payload: %v", err)
			return err
		}

		log.Printf("[AppointmentForward] Forwarding request %s for vendor %s", req.ID, req.VendorID)
		if err := client.SubmitAppointment(ctx, req); err != nil {
			log.Printf("[AppointmentForward] Failed to forward request %s: %v", req.ID, err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[CatalogWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
