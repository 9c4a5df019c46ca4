// Package jobs provides scheduled background tasks for the dispatch service.
//
// Jobs use github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// DatabaseHealthJob pings PostgreSQL on HEALTH_CHECK_SCHEDULE and keeps the
// latest result; GET /health reports it as 200 or 503.
//
// # Usage
//
//	healthJob := jobs.NewDatabaseHealthJob(sqlDB, "*/15 * * * * *", logger)
//	jobManager := jobs.NewJobManager(healthJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
