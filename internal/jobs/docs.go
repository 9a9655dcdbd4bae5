// Package jobs provides scheduled background tasks for the courier service.
//
// Jobs run on github.com/robfig/cron/v3 with the standard five-field parser,
// so descriptors such as "@every 5m" and "@hourly" are accepted as well.
//
// # Available Jobs
//
// 1. PaymentReconciliationJob - lists parcels flagged paid for longer than a
// grace period that have no payment record, logs each one and exports the
// count as a gauge.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(reconciliationJob)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and counted; the next run starts on schedule. Runs
// never overlap: a run still in progress makes the scheduler skip the next one.
package jobs
