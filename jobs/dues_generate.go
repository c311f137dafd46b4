package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/altozano/altozano/internal/billing"
)

// DuesGenerateJob runs the monthly dues generation through the billing
// service, which holds the cross-process lock.
type DuesGenerateJob struct {
	service *billing.Service
	logger  *slog.Logger
}

// NewDuesGenerateJob constructs the job.
func NewDuesGenerateJob(service *billing.Service, logger *slog.Logger) *DuesGenerateJob {
	return &DuesGenerateJob{service: service, logger: logger}
}

// Handle processes TaskTypeDuesGenerate tasks. A run already holding the
// lock is treated as success so the scheduler does not retry into it.
func (j *DuesGenerateJob) Handle(ctx context.Context, t *asynq.Task) error {
	var payload DuesGeneratePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	err := j.service.GenerateMonthlyDues(ctx)
	if errors.Is(err, billing.ErrGenerationRunning) {
		j.logger.Info("dues generation already running", slog.String("triggered", payload.Triggered))
		return nil
	}
	if err != nil {
		j.logger.Error("dues generation", slog.Any("error", err), slog.String("triggered", payload.Triggered))
		return err
	}
	j.logger.Info("dues generation completed", slog.String("triggered", payload.Triggered))
	return nil
}
