// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use the six-field form with seconds.
//
// # Available Jobs
//
// 1. DataFlushJob - Saves accounts, menu and promo codes to storage on FLUSH_SCHEDULE
// 2. QueueReportJob - Logs how many orders await confirmation and delivery on REPORT_SCHEDULE
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager, err := jobs.NewJobManager(saveHandler, pendingHandler, deliveryHandler, jobs.Schedules{
//		Flush:  "0 */5 * * * *",
//		Report: "0 * * * * *",
//	}, logger)
//	if err != nil {
//		log.Fatal("Failed to create jobs:", err)
//	}
//
//	jobManager.StartAll()
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A failed flush is logged and retried on the next tick
// - An invalid schedule is reported by NewJobManager before anything starts
// - StopAll waits for a running job to finish
package jobs
