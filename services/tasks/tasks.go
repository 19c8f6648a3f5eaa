package tasks

import (
	"encoding/json"

	"planora/models"

	"github.com/hibiken/asynq"
)

const (
	TypeCatalogSync        = "catalog:sync"
	TypeForwardAppointment = "appointment:forward"
)

// NewCatalogSyncTask builds the periodic catalog refresh task.
func NewCatalogSyncTask() *asynq.Task {
	return asynq.NewTask(TypeCatalogSync, nil)
}

// NewForwardAppointmentTask builds the task that forwards a validated
// booking request to the upstream marketplace. Retries are left to asynq;
// the request id keeps upstream submission idempotent.
func NewForwardAppointmentTask(req models.AppointmentRequest) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeForwardAppointment, b)
	opts := []asynq.Option{asynq.MaxRetry(5)}

	return task, opts, nil
}
