// Package jobs provides the scheduled background tasks of the marketplace.
//
// The only job today is NotificationDispatchJob, which drains the
// notification outbox every few seconds and publishes the queued events to
// Kafka. Keeping dispatch out of the request path means a slow or
// unreachable broker can never fail a checkout or a status change.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(dispatchHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal(err)
//	}
//	defer jobManager.StopAll()
package jobs
