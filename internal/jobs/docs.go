// Package jobs provides scheduled background tasks for the rate engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. CatalogRefreshJob - Periodically reloads the courier catalog and the
// contracted rate rows from the database into the in-memory snapshot serving
// the aggregation hot path.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(refreshJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh keeps the previous snapshot in place and logs the error;
// quoting continues on the last known-good catalog.
package jobs
