// Package jobs provides scheduled background tasks.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OccupancyAuditJob - Runs every minute to detect occupancy drift between
// lockers and rents: occupied lockers with no in-transit rent, in-transit
// rents whose locker is gone, and rents violating the lockerId/status
// invariant. The audit only reports; the inconsistency windows it watches
// are an accepted property of the transactionless record store, so repairs
// stay a human decision.
package jobs
