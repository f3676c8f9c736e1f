package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"pizzeria/internal/core/application/usecases/commands"
)

// CourierReleaseJob manages the scheduled release of expired courier
// reservations. Runs every minute so couriers whose delivery window lapsed
// return to the dispatch pool even when nobody queries them.
type CourierReleaseJob struct {
	handler commands.ReleaseCouriersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCourierReleaseJob creates a new job for releasing expired reservations.
// Uses ReleaseCouriersCommandHandler to run the sweep every minute.
func NewCourierReleaseJob(handler commands.ReleaseCouriersCommandHandler, logger *slog.Logger) *CourierReleaseJob {
	return &CourierReleaseJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "courier_release_job"),
	}
}

// Start begins the courier release job to run every minute.
func (j *CourierReleaseJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReleaseCouriersCommand()

		released, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Courier release job failed", "error", err)
			return
		}

		if released > 0 {
			j.logger.InfoContext(ctx, "Released expired courier reservations", "count", released)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Courier release job started (running every minute)")
	return nil
}

// Stop stops the courier release job.
func (j *CourierReleaseJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Courier release job stopped")
}
