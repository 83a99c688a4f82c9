package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// dispatchBatchSize caps how many status change events one job run delivers.
// Undelivered overflow is picked up by the next run.
const dispatchBatchSize = 100

// NotificationDispatchJob periodically drains the order status change feed
// and hands each event to the status notifier. Events are delivered oldest
// first; a delivery failure ends the run and the remainder is retried next
// time, so consumers never observe a gap in the feed.
type NotificationDispatchJob struct {
	handler commands.DispatchStatusEventsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewNotificationDispatchJob creates a job that dispatches recorded status
// change events every second.
func NewNotificationDispatchJob(
	handler commands.DispatchStatusEventsCommandHandler,
	logger *slog.Logger,
) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "notification_dispatch_job"),
	}
}

// Start begins the dispatch job to run every second.
func (j *NotificationDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewDispatchStatusEventsCommand(dispatchBatchSize)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Notification dispatch command invalid", "error", cmdErr)
			return
		}

		published, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Notification dispatch failed",
				"published", published, "error", handleErr)
			return
		}

		if published > 0 {
			j.logger.InfoContext(ctx, "Status change events dispatched", "published", published)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification dispatch job started (running every second)")
	return nil
}

// Stop stops the dispatch job.
func (j *NotificationDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification dispatch job stopped")
}
