// Package jobs provides the scheduled background tasks of the ordering
// system, built on github.com/robfig/cron/v3. The only job today is the
// re-offer sweep; JobManager exists so startup and shutdown stay one call
// each as jobs are added.
package jobs

import (
	"fmt"
	"log/slog"

	"foodcourt/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	reOfferJob *ReOfferJob
}

// NewJobManager creates a job manager wired to the command handlers the
// jobs execute.
func NewJobManager(
	reOfferHandler commands.ReOfferSubOrdersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		reOfferJob: NewReOfferJob(reOfferHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.reOfferJob.Start(); err != nil {
		return fmt.Errorf("failed to start re-offer job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reOfferJob.Stop()
}
