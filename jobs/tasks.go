package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskTypeDuesGenerate is the task type for the monthly dues run.
	TaskTypeDuesGenerate = "billing:generate_dues"
)

// DuesGeneratePayload describes a scheduled dues generation run. Triggered
// is an informational tag distinguishing cron runs from manual enqueues.
type DuesGeneratePayload struct {
	Triggered string `json:"triggered"`
}

// NewDuesGenerateTask constructs an Asynq task.
func NewDuesGenerateTask(triggered string) (*asynq.Task, error) {
	data, err := json.Marshal(DuesGeneratePayload{Triggered: triggered})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeDuesGenerate, data), nil
}
