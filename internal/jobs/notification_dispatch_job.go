package jobs

import (
	"context"
	"log/slog"

	"sokoni/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NotificationDispatchJob drains the notification outbox on a schedule.
// Runs every five seconds; each pass publishes one batch of queued
// notifications to the broker.
type NotificationDispatchJob struct {
	handler commands.DispatchNotificationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewNotificationDispatchJob creates the outbox dispatch job.
func NewNotificationDispatchJob(
	handler commands.DispatchNotificationsCommandHandler, logger *slog.Logger,
) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "notification_dispatch_job"),
	}
}

// Start schedules the job to run every five seconds.
func (j *NotificationDispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchNotificationsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Notification dispatch pass failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification dispatch job started (running every 5 seconds)")
	return nil
}

// Stop stops the job.
func (j *NotificationDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification dispatch job stopped")
}
