package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"bloqnet/internal/core/domain/model/locker"
	"bloqnet/internal/core/domain/model/rent"
	"bloqnet/internal/core/ports"
)

// AuditReport is one audit pass over the locker and rent tables.
type AuditReport struct {
	// OrphanedLockers are occupied lockers with no in-transit rent assigned
	// to them. The usual cause is a rent deleted mid-delivery; rent deletion
	// never releases occupancy.
	OrphanedLockers []locker.Locker

	// StrandedRents are in-transit rents whose locker no longer exists, or
	// exists but is not marked occupied.
	StrandedRents []rent.Rent

	// CorruptedRents violate the lifecycle invariant that lockerId is set
	// exactly while the rent is past CREATED: a CREATED rent carrying a
	// locker assignment, or an in-transit rent carrying none.
	CorruptedRents []rent.Rent
}

func (r AuditReport) Clean() bool {
	return len(r.OrphanedLockers) == 0 && len(r.StrandedRents) == 0 && len(r.CorruptedRents) == 0
}

// OccupancyAuditJob periodically cross-checks locker occupancy against the
// rent lifecycle. It reports drift and never repairs it.
type OccupancyAuditJob struct {
	lockers ports.RecordTable[locker.Locker]
	rents   ports.RecordTable[rent.Rent]
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOccupancyAuditJob creates the audit job over the locker and rent tables.
func NewOccupancyAuditJob(lockers ports.RecordTable[locker.Locker],
	rents ports.RecordTable[rent.Rent], logger *slog.Logger) *OccupancyAuditJob {
	return &OccupancyAuditJob{
		lockers: lockers,
		rents:   rents,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "occupancy_audit_job"),
	}
}

// Start begins the audit job to run every minute.
func (j *OccupancyAuditJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		report, err := j.Scan(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Occupancy audit failed", "error", err)
			return
		}
		j.report(ctx, report)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Occupancy audit job started (running every minute)")
	return nil
}

// Stop stops the audit job.
func (j *OccupancyAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Occupancy audit job stopped")
}

// Scan performs one audit pass.
func (j *OccupancyAuditJob) Scan(ctx context.Context) (AuditReport, error) {
	lockers, err := j.lockers.Read(ctx, func(locker.Locker) bool { return true })
	if err != nil {
		return AuditReport{}, err
	}
	rents, err := j.rents.Read(ctx, func(rent.Rent) bool { return true })
	if err != nil {
		return AuditReport{}, err
	}

	lockersByID := make(map[string]locker.Locker, len(lockers))
	inTransitByLocker := make(map[string]int)
	for _, l := range lockers {
		lockersByID[l.ID.String()] = l
	}

	var report AuditReport
	for _, r := range rents {
		assigned := r.LockerID != nil
		switch {
		case r.Status == rent.StatusCreated && assigned,
			r.Status.IsInTransit() && !assigned:
			report.CorruptedRents = append(report.CorruptedRents, r)
		case r.Status.IsInTransit():
			holder, exists := lockersByID[r.LockerID.String()]
			if !exists || !holder.IsOccupied {
				report.StrandedRents = append(report.StrandedRents, r)
			}
			inTransitByLocker[r.LockerID.String()]++
		}
	}

	for _, l := range lockers {
		if l.IsOccupied && inTransitByLocker[l.ID.String()] == 0 {
			report.OrphanedLockers = append(report.OrphanedLockers, l)
		}
	}
	return report, nil
}

func (j *OccupancyAuditJob) report(ctx context.Context, report AuditReport) {
	if report.Clean() {
		return
	}

	for _, l := range report.OrphanedLockers {
		j.logger.WarnContext(ctx, "Occupied locker has no in-transit rent",
			"lockerId", l.ID.String(), "bloqId", l.BloqID.String())
	}
	for _, r := range report.StrandedRents {
		j.logger.WarnContext(ctx, "In-transit rent has no occupied locker",
			"rentId", r.ID.String(), "lockerId", r.LockerID.String(), "status", string(r.Status))
	}
	for _, r := range report.CorruptedRents {
		j.logger.ErrorContext(ctx, "Rent violates the lockerId/status invariant",
			"rentId", r.ID.String(), "status", string(r.Status))
	}
}
