package attendance

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/STS-Engineer/back-pointeuse/internal/domain/attendance"
	"github.com/STS-Engineer/back-pointeuse/internal/domain/roster"
	rosterstore "github.com/STS-Engineer/back-pointeuse/internal/service/roster"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const dateLayout = "2006-01-02"

const (
	onTimeCutoffMinutes  = 8 * 60 // arrival before 08:00 is on time
	presentCutoffMinutes = 9 * 60 // arrival up to 09:00 is present, later is late

	lunchThresholdMinutes = 240 // sessions longer than this get the lunch break deducted
	lunchBreakMinutes     = 60
)

// Builder groups canonical events by (employee, business day) and derives one
// attendance record per group. Build is a pure batch transformation: identical
// inputs always yield identical output, and no shared state escapes the call.
type Builder struct {
	store    *rosterstore.Store
	resolver *rosterstore.Resolver
	loc      *time.Location
	collator *collate.Collator
}

func NewBuilder(store *rosterstore.Store, loc *time.Location) *Builder {
	return &Builder{
		store:    store,
		resolver: rosterstore.NewResolver(store),
		loc:      loc,
		// employee names are French/Arabic transliterations
		collator: collate.New(language.French, collate.IgnoreCase),
	}
}

type qualifiedEvent struct {
	emp   roster.Employee
	local time.Time
}

// Build derives attendance records for a full event batch. today is the
// current date in the business timezone (2006-01-02), passed explicitly so
// status derivation stays deterministic and testable.
func (b *Builder) Build(events []attendance.ClockEvent, today string) ([]attendance.Record, attendance.Diagnostics) {
	diag := attendance.Diagnostics{TotalEvents: len(events)}
	b.countIdentifierMatches(events, &diag)

	// Filter down to resolvable business-day events.
	qualified := make([]qualifiedEvent, 0, len(events))
	for _, ev := range events {
		if ev.Fallback {
			diag.TimestampFallbacks++
		}
		if ev.Instant.IsZero() {
			diag.UnresolvedEvents++
			continue
		}
		emp, ok := b.resolver.Resolve(ev.Identifier)
		if !ok {
			diag.UnresolvedEvents++
			continue
		}
		local := ev.Instant.In(b.loc)
		if wd := local.Weekday(); wd == time.Saturday || wd == time.Sunday {
			diag.WeekendEvents++
			continue
		}
		diag.ResolvedEvents++
		qualified = append(qualified, qualifiedEvent{emp: emp, local: local})
	}

	// Global stable sort before bucketing, so tie-breaking is deterministic
	// (ties keep original input order) regardless of how buckets form.
	sort.SliceStable(qualified, func(i, j int) bool {
		return qualified[i].local.Before(qualified[j].local)
	})

	type bucketKey struct {
		employeeID int
		date       string
	}
	buckets := make(map[bucketKey][]attendance.Entry)
	bucketEmployee := make(map[bucketKey]roster.Employee)
	for _, q := range qualified {
		key := bucketKey{employeeID: q.emp.ID, date: q.local.Format(dateLayout)}
		buckets[key] = append(buckets[key], attendance.Entry{
			Instant: q.local,
			Time:    q.local.Format("15:04"),
			Hour:    q.local.Hour(),
			Minute:  q.local.Minute(),
			Role:    attendance.RolePassage,
		})
		bucketEmployee[key] = q.emp
	}

	records := make([]attendance.Record, 0, len(buckets))
	for key, entries := range buckets {
		rec, ok := b.buildRecord(bucketEmployee[key], key.date, entries, today)
		if !ok {
			diag.SkippedBuckets++
			continue
		}
		records = append(records, rec)
	}

	// Output contract: newest date first, then display name ascending.
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date > records[j].Date
		}
		return b.collator.CompareString(records[i].EmployeeName, records[j].EmployeeName) < 0
	})

	return records, diag
}

// buildRecord applies the intelligent-punch rules to one bucket: first punch
// is the arrival, last punch the departure, everything between a passage.
func (b *Builder) buildRecord(emp roster.Employee, date string, entries []attendance.Entry, today string) (attendance.Record, bool) {
	if len(entries) == 0 {
		return attendance.Record{}, false
	}

	// Re-assert the bucket invariant: entries ordered by hour then minute.
	// The global sort already guarantees this, but the ordering is part of
	// the record contract, not an accident of the pipeline.
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Hour != entries[j].Hour {
			return entries[i].Hour < entries[j].Hour
		}
		return entries[i].Minute < entries[j].Minute
	})

	first := &entries[0]
	first.Role = attendance.RoleArrival
	arrival := first.Time

	rec := attendance.Record{
		EmployeeID:   emp.ID,
		Code:         emp.Code,
		EmployeeName: emp.DisplayName,
		CardNo:       rosterstore.CardNo(emp.Code),
		Date:         date,
		DayName:      dayName(date),
		Entries:      entries,
		ArrivalTime:  &arrival,
		HoursWorked:  "0.00",
	}

	arrivalMinutes := first.Hour*60 + first.Minute
	switch {
	case arrivalMinutes < onTimeCutoffMinutes:
		rec.Status = attendance.StatusOnTime
	case arrivalMinutes <= presentCutoffMinutes:
		rec.Status = attendance.StatusPresent
	default:
		rec.Status = attendance.StatusLate
	}

	if len(entries) > 1 {
		last := &entries[len(entries)-1]
		last.Role = attendance.RoleDeparture
		departure := last.Time
		rec.DepartureTime = &departure

		minutes := last.Hour*60 + last.Minute - arrivalMinutes
		if minutes > lunchThresholdMinutes {
			minutes -= lunchBreakMinutes
		}
		if minutes < 0 {
			minutes = 0
		}
		rec.HoursWorked = formatHours(float64(minutes) / 60)
	} else if date == today {
		// Single punch on the current day: the workday is still open.
		rec.Status = attendance.StatusInProgress
	}

	return rec, true
}

// countIdentifierMatches records how many distinct raw identifiers resolve
// against the roster. Diagnostics only, no effect on record derivation.
func (b *Builder) countIdentifierMatches(events []attendance.ClockEvent, diag *attendance.Diagnostics) {
	seen := make(map[string]bool)
	for _, ev := range events {
		id := strings.TrimSpace(ev.Identifier)
		if id == "" || id == "0" || seen[id] {
			continue
		}
		seen[id] = true
		if _, ok := b.resolver.Resolve(id); ok {
			diag.MatchedIdentifiers++
		}
	}
	diag.UniqueIdentifiers = len(seen)
}

func dayName(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	return t.Weekday().String()
}

func formatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', 2, 64)
}
