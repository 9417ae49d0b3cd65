// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// OrderRetentionJob purges orders (and their payment attempts) once they are
// older than the retention window. It runs on a standard five-field cron
// expression or a descriptor such as "@hourly"; overlapping runs are skipped.
//
// Jobs are started and stopped together through JobManager:
//
//	manager := jobs.NewJobManager(retentionJob)
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
package jobs
