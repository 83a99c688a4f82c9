// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fulfillment service.
//
// # Available Jobs
//
// 1. NotificationDispatchJob - Drains the recorded order status change feed
// and delivers each event to the status notifier, marking delivered events
// as published. Delivery is at-least-once and in recording order; a failed
// delivery stops the batch so nothing is skipped.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dispatchHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
