package device

import (
	"context"
	"math/rand"
	"time"

	"github.com/STS-Engineer/back-pointeuse/internal/domain/device"
	"github.com/STS-Engineer/back-pointeuse/internal/domain/roster"
)

// MockSource generates a plausible event history when no terminal is
// reachable, so the rest of the pipeline keeps serving data. Generation is
// seeded, so the same roster and date yield the same batch on every refresh
// and snapshots stay stable between recomputes.
type MockSource struct {
	employees []roster.Employee
	loc       *time.Location
	now       func() time.Time
	days      int
}

func NewMockSource(employees []roster.Employee, loc *time.Location, now func() time.Time) *MockSource {
	if now == nil {
		now = time.Now
	}
	return &MockSource{
		employees: employees,
		loc:       loc,
		now:       now,
		days:      30,
	}
}

func (m *MockSource) Name() string { return "mock" }

// FetchEvents produces up to 30 days of history ending today. Weekends are
// skipped and roughly 15% of employee-days are absent; present days get an
// arrival punch between 07:00 and 09:00 and a departure 8-10 hours later.
func (m *MockSource) FetchEvents(_ context.Context) ([]device.RawEvent, error) {
	today := m.now().In(m.loc)
	rng := rand.New(rand.NewSource(mockSeed(today)))

	var events []device.RawEvent
	for offset := m.days - 1; offset >= 0; offset-- {
		day := today.AddDate(0, 0, -offset)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		for _, emp := range m.employees {
			if rng.Float64() < 0.15 {
				continue
			}

			arrival := time.Date(day.Year(), day.Month(), day.Day(),
				7, rng.Intn(120), rng.Intn(60), 0, m.loc)
			events = append(events, m.punch(emp, arrival))

			// Today may still be in progress: sometimes only the arrival exists.
			if offset == 0 && rng.Float64() < 0.4 {
				continue
			}
			departure := arrival.Add(time.Duration(8*60+rng.Intn(120)) * time.Minute)
			events = append(events, m.punch(emp, departure))
		}
	}
	return events, nil
}

func (m *MockSource) punch(emp roster.Employee, at time.Time) device.RawEvent {
	id := emp.Code
	if len(emp.Aliases) > 0 {
		id = emp.Aliases[0]
	}
	return device.RawEvent{Payload: map[string]any{
		"user_id":     id,
		"record_time": at,
		"state":       1,
	}}
}

// mockSeed keys the generator on the calendar date, so intra-day refreshes
// reproduce the same batch but the history rolls forward at midnight.
func mockSeed(today time.Time) int64 {
	y, mo, d := today.Date()
	return int64(y)*10000 + int64(mo)*100 + int64(d)
}
