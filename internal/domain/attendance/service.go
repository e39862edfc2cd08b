package attendance

import (
	"context"
)

// AttendanceService defines the reconciliation engine's public surface.
// Refresh is the only mutating operation; every query reads the snapshot that
// was current when the query started.
type AttendanceService interface {
	// Refresh re-acquires the full event batch and recomputes all records.
	// It is idempotent and safe to run concurrently with readers.
	Refresh(ctx context.Context) (RefreshResult, error)

	// Snapshot returns the currently published recompute result.
	Snapshot() *Snapshot

	// Summary returns the top-level overview of the current snapshot.
	Summary() Summary

	// DetailedStats returns the extended per-day / per-employee statistics.
	DetailedStats() DetailedStats

	// ByDate returns every roster employee for a date, absent ones included.
	ByDate(date string) (DayReport, error)

	// ByEmployee returns one employee's records newest-first with totals.
	ByEmployee(id int) (EmployeeReport, error)

	// ByEmployeeAndDate returns the single record for (employee, date),
	// synthesizing an absent placeholder when none exists.
	ByEmployeeAndDate(id int, date string) (EmployeeDayReport, error)

	// Report filters records to an inclusive date range with rollups.
	Report(start, end string) (RangeReport, error)

	// AvailableDates lists the distinct dates present in the snapshot.
	AvailableDates() []DateOverview
}
