// Package jobs provides scheduled background tasks for the storefront.
//
// Jobs run on github.com/robfig/cron/v3 schedules and are coordinated
// through JobManager:
//
//	jobManager := jobs.NewJobManager(stalePendingHandler, cfg.PendingReminderAge, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// 1. PendingOrderReminderJob - runs every minute and logs pending orders
// that have sat unconfirmed past the configured age, so an operator
// notices orders the kitchen has not picked up.
package jobs
