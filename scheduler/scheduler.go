package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"canary-service/logging"

	"go.uber.org/zap"
)

// Job is a unit of background work run on every tick.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// Scheduler runs its jobs on a fixed interval, apart from request handling.
type Scheduler struct {
	interval time.Duration
	jobs     []Job

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func New(interval time.Duration, jobs ...Job) *Scheduler {
	return &Scheduler{
		interval: interval,
		jobs:     jobs,
	}
}

// Start launches the tick loop. Calling Start on a running scheduler is a no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.loop(ctx, s.done)
	logging.Info("Scheduler started", zap.Duration("interval", s.interval), zap.Int("jobs", len(s.jobs)))
}

// Stop cancels the loop and waits for the current tick to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	logging.Info("Scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	for _, job := range s.jobs {
		if ctx.Err() != nil {
			return
		}
		if err := runJob(ctx, job, s.interval); err != nil {
			logging.Error("Scheduled job failed", zap.String("job", job.Name()), zap.Error(err))
		}
	}
}

// runJob bounds a job to one interval and turns a panic into an error.
func runJob(ctx context.Context, job Job, timeout time.Duration) (err error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("job panicked: %v", p)
		}
	}()
	return job.Run(ctx)
}
