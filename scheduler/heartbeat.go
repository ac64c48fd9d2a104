package scheduler

import (
	"context"

	"canary-service/logging"

	"go.uber.org/zap"
)

// UserCounter is the slice of the store the heartbeat needs.
type UserCounter interface {
	CountUsers(ctx context.Context) (int, error)
}

// HeartbeatJob logs a line per tick. It is the hook where per-user prompt
// scheduling will live; for now it only reads.
type HeartbeatJob struct {
	users UserCounter
}

func NewHeartbeatJob(users UserCounter) *HeartbeatJob {
	return &HeartbeatJob{users: users}
}

func (j *HeartbeatJob) Name() string { return "heartbeat" }

func (j *HeartbeatJob) Run(ctx context.Context) error {
	n, err := j.users.CountUsers(ctx)
	if err != nil {
		return err
	}
	logging.Info("Scheduler tick", zap.String("job", j.Name()), zap.Int("users", n))
	return nil
}
