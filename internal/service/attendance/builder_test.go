package attendance

import (
	"testing"
	"time"

	"github.com/STS-Engineer/back-pointeuse/internal/domain/attendance"
	"github.com/STS-Engineer/back-pointeuse/internal/domain/roster"
	rosterstore "github.com/STS-Engineer/back-pointeuse/internal/service/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builderStore() *rosterstore.Store {
	return rosterstore.NewStore([]roster.Employee{
		{ID: 1, Code: "1", DisplayName: "Ben Salah Ahmed", Aliases: []string{"40001"}},
		{ID: 14, Code: "14", DisplayName: "Trabelsi Mouna", Aliases: []string{"40014"}},
		{ID: 56, Code: "56", DisplayName: "Gharbi Sami", Aliases: []string{"40056"}},
	})
}

func punch(identifier string, at time.Time) attendance.ClockEvent {
	return attendance.ClockEvent{Identifier: identifier, Instant: at, State: 1}
}

// monday is a business day well in the past relative to the test "today".
var monday = time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

func at(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

func TestBuildFullDay(t *testing.T) {
	t.Parallel()
	b := NewBuilder(builderStore(), time.UTC)

	// Four punches: arrival 08:05, two midday passages, departure 17:30.
	events := []attendance.ClockEvent{
		punch("40014", at(monday, 12, 0)),
		punch("40014", at(monday, 8, 5)),
		punch("40014", at(monday, 17, 30)),
		punch("40014", at(monday, 13, 0)),
	}

	records, diag := b.Build(events, "2024-03-15")
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, 14, rec.EmployeeID)
	assert.Equal(t, "2024-03-11", rec.Date)
	assert.Equal(t, "Monday", rec.DayName)
	require.Len(t, rec.Entries, 4)

	assert.Equal(t, attendance.RoleArrival, rec.Entries[0].Role)
	assert.Equal(t, attendance.RolePassage, rec.Entries[1].Role)
	assert.Equal(t, attendance.RolePassage, rec.Entries[2].Role)
	assert.Equal(t, attendance.RoleDeparture, rec.Entries[3].Role)

	require.NotNil(t, rec.ArrivalTime)
	require.NotNil(t, rec.DepartureTime)
	assert.Equal(t, "08:05", *rec.ArrivalTime)
	assert.Equal(t, "17:30", *rec.DepartureTime)

	// 565 raw minutes, minus the hour of lunch: 505 min = 8.42 h.
	assert.Equal(t, "8.42", rec.HoursWorked)
	// 08:05 arrival is past the 08:00 on-time cutoff but within tolerance.
	assert.Equal(t, attendance.StatusPresent, rec.Status)

	assert.Equal(t, 4, diag.ResolvedEvents)
	assert.Equal(t, 0, diag.UnresolvedEvents)
}

func TestBuildStatusTiers(t *testing.T) {
	t.Parallel()
	b := NewBuilder(builderStore(), time.UTC)

	cases := []struct {
		name    string
		arrival time.Time
		want    attendance.Status
	}{
		{"before eight is on time", at(monday, 7, 45), attendance.StatusOnTime},
		{"exactly eight is present", at(monday, 8, 0), attendance.StatusPresent},
		{"exactly nine is present", at(monday, 9, 0), attendance.StatusPresent},
		{"past nine is late", at(monday, 9, 1), attendance.StatusLate},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			events := []attendance.ClockEvent{
				punch("40014", c.arrival),
				punch("40014", at(monday, 17, 0)),
			}
			records, _ := b.Build(events, "2024-03-15")
			require.Len(t, records, 1)
			assert.Equal(t, c.want, records[0].Status)
		})
	}
}

func TestBuildSinglePunchToday(t *testing.T) {
	t.Parallel()
	b := NewBuilder(builderStore(), time.UTC)

	events := []attendance.ClockEvent{punch("40014", at(monday, 8, 30))}
	records, _ := b.Build(events, "2024-03-11")

	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, attendance.StatusInProgress, rec.Status)
	assert.Nil(t, rec.DepartureTime)
	assert.Equal(t, "0.00", rec.HoursWorked)
}

func TestBuildSinglePunchPastDay(t *testing.T) {
	t.Parallel()
	b := NewBuilder(builderStore(), time.UTC)

	events := []attendance.ClockEvent{punch("40014", at(monday, 8, 30))}
	records, _ := b.Build(events, "2024-03-15")

	require.Len(t, records, 1)
	rec := records[0]
	// Not today, so the day is closed: status derives from arrival alone.
	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.Nil(t, rec.DepartureTime)
	assert.Equal(t, "0.00", rec.HoursWorked)
}

func TestBuildShortSessionNoLunchDeduction(t *testing.T) {
	t.Parallel()
	b := NewBuilder(builderStore(), time.UTC)

	// 3.5 hours, below the deduction threshold.
	events := []attendance.ClockEvent{
		punch("40014", at(monday, 8, 0)),
		punch("40014", at(monday, 11, 30)),
	}
	records, _ := b.Build(events, "2024-03-15")

	require.Len(t, records, 1)
	assert.Equal(t, "3.50", records[0].HoursWorked)
}

func TestBuildWeekendEventsExcluded(t *testing.T) {
	t.Parallel()
	b := NewBuilder(builderStore(), time.UTC)

	saturday := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	events := []attendance.ClockEvent{
		punch("40014", at(saturday, 8, 0)),
		punch("40014", at(sunday, 8, 0)),
		punch("40014", at(monday, 8, 0)),
		punch("40014", at(monday, 17, 0)),
	}

	records, diag := b.Build(events, "2024-03-15")
	require.Len(t, records, 1)
	assert.Equal(t, "2024-03-11", records[0].Date)
	assert.Equal(t, 2, diag.WeekendEvents)
	assert.Equal(t, 2, diag.ResolvedEvents)
}

func TestBuildUnresolvedEventsCounted(t *testing.T) {
	t.Parallel()
	b := NewBuilder(builderStore(), time.UTC)

	events := []attendance.ClockEvent{
		punch("40014", at(monday, 8, 0)),
		punch("999999", at(monday, 8, 5)),
		punch("0", at(monday, 8, 10)),
		{Identifier: "40014", Fallback: true}, // zero instant
	}

	records, diag := b.Build(events, "2024-03-15")
	require.Len(t, records, 1)
	assert.Equal(t, 4, diag.TotalEvents)
	assert.Equal(t, 1, diag.ResolvedEvents)
	assert.Equal(t, 3, diag.UnresolvedEvents)
	assert.Equal(t, 1, diag.TimestampFallbacks)
}

func TestBuildOutputOrdering(t *testing.T) {
	t.Parallel()
	b := NewBuilder(builderStore(), time.UTC)

	tuesday := monday.AddDate(0, 0, 1)
	events := []attendance.ClockEvent{
		punch("40056", at(monday, 8, 0)),
		punch("40001", at(monday, 8, 0)),
		punch("40014", at(tuesday, 8, 0)),
	}

	records, _ := b.Build(events, "2024-03-15")
	require.Len(t, records, 3)

	// Newest date first, then name ascending within a date.
	assert.Equal(t, "2024-03-12", records[0].Date)
	assert.Equal(t, "2024-03-11", records[1].Date)
	assert.Equal(t, "2024-03-11", records[2].Date)
	assert.Equal(t, "Ben Salah Ahmed", records[1].EmployeeName)
	assert.Equal(t, "Gharbi Sami", records[2].EmployeeName)
}

func TestBuildIdempotent(t *testing.T) {
	t.Parallel()
	b := NewBuilder(builderStore(), time.UTC)

	events := []attendance.ClockEvent{
		punch("40014", at(monday, 8, 5)),
		punch("40056", at(monday, 8, 5)),
		punch("40014", at(monday, 17, 30)),
	}

	first, firstDiag := b.Build(events, "2024-03-15")
	second, secondDiag := b.Build(events, "2024-03-15")

	assert.Equal(t, first, second)
	assert.Equal(t, firstDiag, secondDiag)
}

func TestBuildIdentifierMatchingStats(t *testing.T) {
	t.Parallel()
	b := NewBuilder(builderStore(), time.UTC)

	events := []attendance.ClockEvent{
		punch("40014", at(monday, 8, 0)),
		punch("40014", at(monday, 17, 0)), // duplicate identifier, counted once
		punch("999999", at(monday, 8, 0)),
		punch("0", at(monday, 8, 0)), // sentinel, not counted
	}

	_, diag := b.Build(events, "2024-03-15")
	assert.Equal(t, 2, diag.UniqueIdentifiers)
	assert.Equal(t, 1, diag.MatchedIdentifiers)
}
