package attendance

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/STS-Engineer/back-pointeuse/internal/domain/attendance"
	"github.com/STS-Engineer/back-pointeuse/internal/domain/device"
	rosterstore "github.com/STS-Engineer/back-pointeuse/internal/service/roster"
	"github.com/STS-Engineer/back-pointeuse/internal/pkg/validator"
	"github.com/google/uuid"
)

// AttendanceServiceImpl runs the full reconciliation pipeline and publishes
// each recompute as an immutable snapshot. Readers load the pointer without
// locks; Refresh swaps it in one atomic store, so queries racing a recompute
// see either the old snapshot or the new one, never a mix.
type AttendanceServiceImpl struct {
	source   device.Source
	fallback device.Source
	store    *rosterstore.Store

	normalizer *Normalizer
	builder    *Builder
	agg        *Aggregator

	loc *time.Location
	now func() time.Time

	snapshot atomic.Pointer[attendance.Snapshot]
}

func NewAttendanceService(
	source device.Source,
	fallback device.Source,
	store *rosterstore.Store,
	loc *time.Location,
) *AttendanceServiceImpl {
	s := &AttendanceServiceImpl{
		source:     source,
		fallback:   fallback,
		store:      store,
		normalizer: NewNormalizer(loc, nil),
		builder:    NewBuilder(store, loc),
		agg:        NewAggregator(store),
		loc:        loc,
		now:        time.Now,
	}
	// Seed an empty snapshot so queries before the first Refresh see a valid,
	// fully-absent view instead of a nil dereference.
	s.snapshot.Store(&attendance.Snapshot{
		ID:          uuid.NewString(),
		GeneratedAt: s.now(),
	})
	return s
}

// Refresh acquires the full event batch, recomputes every record from scratch
// and publishes the result. When the primary source fails the fallback is
// consulted instead; acquisition failure never leaves a stale half-built view.
func (s *AttendanceServiceImpl) Refresh(ctx context.Context) (attendance.RefreshResult, error) {
	sourceName := s.source.Name()
	realData := true

	raws, err := s.source.FetchEvents(ctx)
	if err != nil {
		slog.Warn("primary event source unavailable, using fallback",
			"source", sourceName,
			"fallback", s.fallback.Name(),
			"error", err,
		)
		sourceName = s.fallback.Name()
		realData = false
		raws, err = s.fallback.FetchEvents(ctx)
		if err != nil {
			return attendance.RefreshResult{}, err
		}
	}

	events := s.normalizer.NormalizeAll(raws)
	today := s.now().In(s.loc).Format(dateLayout)
	records, diag := s.builder.Build(events, today)

	snap := &attendance.Snapshot{
		ID:          uuid.NewString(),
		GeneratedAt: s.now(),
		RealData:    realData,
		Records:     records,
		Events:      events,
		Diagnostics: diag,
	}
	s.snapshot.Store(snap)

	slog.Info("attendance snapshot published",
		"snapshot_id", snap.ID,
		"source", sourceName,
		"events", len(events),
		"records", len(records),
		"unresolved", diag.UnresolvedEvents,
	)

	return attendance.RefreshResult{
		SnapshotID:   snap.ID,
		EventsCount:  len(events),
		RecordsCount: len(records),
		RealData:     realData,
		Source:       sourceName,
	}, nil
}

func (s *AttendanceServiceImpl) Snapshot() *attendance.Snapshot {
	return s.snapshot.Load()
}

func (s *AttendanceServiceImpl) today() string {
	return s.now().In(s.loc).Format(dateLayout)
}

func (s *AttendanceServiceImpl) Summary() attendance.Summary {
	return s.agg.Summary(s.snapshot.Load(), s.today())
}

func (s *AttendanceServiceImpl) DetailedStats() attendance.DetailedStats {
	return s.agg.DetailedStats(s.snapshot.Load(), s.today())
}

func (s *AttendanceServiceImpl) ByDate(date string) (attendance.DayReport, error) {
	if _, ok := validator.IsValidDate(date); !ok {
		return attendance.DayReport{}, attendance.ErrInvalidDate
	}
	return s.agg.ByDate(s.snapshot.Load(), date), nil
}

func (s *AttendanceServiceImpl) ByEmployee(id int) (attendance.EmployeeReport, error) {
	return s.agg.ByEmployee(s.snapshot.Load(), id)
}

func (s *AttendanceServiceImpl) ByEmployeeAndDate(id int, date string) (attendance.EmployeeDayReport, error) {
	if _, ok := validator.IsValidDate(date); !ok {
		return attendance.EmployeeDayReport{}, attendance.ErrInvalidDate
	}
	return s.agg.ByEmployeeAndDate(s.snapshot.Load(), id, date)
}

func (s *AttendanceServiceImpl) Report(start, end string) (attendance.RangeReport, error) {
	if _, ok := validator.IsValidDate(start); !ok {
		return attendance.RangeReport{}, attendance.ErrInvalidDate
	}
	if _, ok := validator.IsValidDate(end); !ok {
		return attendance.RangeReport{}, attendance.ErrInvalidDate
	}
	// Dates are zero-padded ISO strings, lexicographic order is date order.
	if start > end {
		return attendance.RangeReport{}, attendance.ErrInvalidDateRange
	}
	return s.agg.Report(s.snapshot.Load(), start, end), nil
}

func (s *AttendanceServiceImpl) AvailableDates() []attendance.DateOverview {
	return s.agg.AvailableDates(s.snapshot.Load())
}
