package jobs

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PendingOrderReminderJob surfaces pending orders nobody has confirmed.
// Runs every minute and logs each order older than the configured age.
type PendingOrderReminderJob struct {
	handler   queries.GetStalePendingOrdersQueryHandler
	olderThan time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewPendingOrderReminderJob creates the reminder job.
// olderThan sets how long an order may stay pending before it is reported.
func NewPendingOrderReminderJob(
	handler queries.GetStalePendingOrdersQueryHandler,
	olderThan time.Duration,
	logger *slog.Logger,
) *PendingOrderReminderJob {
	return &PendingOrderReminderJob{
		handler:   handler,
		olderThan: olderThan,
		cron:      cron.New(),
		logger:    logger.With("component", "pending_order_reminder_job"),
	}
}

// Start begins the reminder job to run every minute.
func (j *PendingOrderReminderJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetStalePendingOrdersQuery(j.olderThan)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Pending order reminder job misconfigured", "error", queryErr)
			return
		}

		stale, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Pending order reminder job failed", "error", handleErr)
			return
		}

		for _, row := range stale {
			j.logger.WarnContext(ctx, "Order still pending",
				"orderId", row.ID,
				"customer", row.CustomerName,
				"total", row.Total,
				"age", time.Since(row.CreatedAt).Round(time.Second).String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending order reminder job started (running every minute)")
	return nil
}

// Stop stops the reminder job.
func (j *PendingOrderReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending order reminder job stopped")
}
