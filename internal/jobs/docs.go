// Package jobs provides scheduled background tasks for the procurement system.
//
// Jobs are built on github.com/robfig/cron/v3 and managed through JobManager:
//
//	jobManager := jobs.NewJobManager(orderRepository, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// LateDeliveryJob runs hourly and logs a warning for every active order past
// its expected delivery date. It never mutates order state; overdue handling
// is left to the buyer.
package jobs
