package jobs

import (
	"fmt"
	"log/slog"

	"bloqnet/internal/core/domain/model/locker"
	"bloqnet/internal/core/domain/model/rent"
	"bloqnet/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	occupancyAuditJob *OccupancyAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(lockers ports.RecordTable[locker.Locker],
	rents ports.RecordTable[rent.Rent], logger *slog.Logger) *JobManager {
	return &JobManager{
		occupancyAuditJob: NewOccupancyAuditJob(lockers, rents, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.occupancyAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start occupancy audit job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.occupancyAuditJob.Stop()
}
