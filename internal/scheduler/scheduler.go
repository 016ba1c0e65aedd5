package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

// jobTimeout bounds a single publish or receive run.
const jobTimeout = 30 * time.Second

// Publisher writes a fresh snapshot.
type Publisher interface {
	Publish(ctx context.Context) error
}

// Passer runs one receiver pass.
type Passer interface {
	Pass(ctx context.Context) error
}

// Scheduler periodically publishes snapshots and runs receiver passes.
type Scheduler struct {
	scheduler *gocron.Scheduler
	publisher Publisher
	receiver  Passer
	logger    *slog.Logger

	publishInterval time.Duration
	receiveInterval time.Duration
}

// New creates a new Scheduler.
func New(publisher Publisher, receiver Passer, publishInterval, receiveInterval time.Duration, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	s := gocron.NewScheduler(time.UTC)
	// A slow run is never overlapped by the next one.
	s.SingletonModeAll()
	return &Scheduler{
		scheduler:       s,
		publisher:       publisher,
		receiver:        receiver,
		logger:          logger.With("component", "scheduler"),
		publishInterval: publishInterval,
		receiveInterval: receiveInterval,
	}
}

// Start publishes an initial snapshot, schedules both jobs and starts the
// underlying scheduler. Jobs stop being started once ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.run(ctx, "publish", s.publisher.Publish)

	_, err := s.scheduler.Every(s.publishInterval).Tag("publish").Do(func() {
		s.run(ctx, "publish", s.publisher.Publish)
	})
	if err != nil {
		return err
	}

	_, err = s.scheduler.Every(s.receiveInterval).Tag("receive").Do(func() {
		s.run(ctx, "receive", s.receiver.Pass)
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	s.logger.Info("scheduler started",
		"publish_interval", s.publishInterval,
		"receive_interval", s.receiveInterval,
	)
	return nil
}

// run executes one job. Failures are logged; the next run is scheduled regardless.
func (s *Scheduler) run(ctx context.Context, name string, job func(context.Context) error) {
	if ctx.Err() != nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()

	if err := job(ctx); err != nil {
		s.logger.Warn("job failed", "job", name, "error", err)
	}
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
