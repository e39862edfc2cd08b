package attendance

import (
	"sort"
	"strconv"

	"github.com/STS-Engineer/back-pointeuse/internal/domain/attendance"
	"github.com/STS-Engineer/back-pointeuse/internal/domain/roster"
	rosterstore "github.com/STS-Engineer/back-pointeuse/internal/service/roster"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Aggregator answers read-only queries over a published snapshot. Every
// result is derivable from (records, roster) alone, so answers can be
// reproduced from scratch after any recompute.
type Aggregator struct {
	store    *rosterstore.Store
	collator *collate.Collator
}

func NewAggregator(store *rosterstore.Store) *Aggregator {
	return &Aggregator{
		store:    store,
		collator: collate.New(language.French, collate.IgnoreCase),
	}
}

// AbsentRecord synthesizes the placeholder for a roster employee with no
// qualifying punches on a date. The session builder never emits these; they
// are materialized here, by set-difference against the full roster.
func AbsentRecord(emp roster.Employee, date string) attendance.Record {
	return attendance.Record{
		EmployeeID:   emp.ID,
		Code:         emp.Code,
		EmployeeName: emp.DisplayName,
		CardNo:       rosterstore.CardNo(emp.Code),
		Date:         date,
		DayName:      dayName(date),
		Entries:      []attendance.Entry{},
		HoursWorked:  "0.00",
		Status:       attendance.StatusAbsent,
	}
}

func (a *Aggregator) Summary(snap *attendance.Snapshot, today string) attendance.Summary {
	days := make(map[string]struct{})
	presentToday := 0
	for _, rec := range snap.Records {
		days[rec.Date] = struct{}{}
		if rec.Date == today && rec.Status != attendance.StatusAbsent {
			presentToday++
		}
	}
	return attendance.Summary{
		SnapshotID:     snap.ID,
		TotalEmployees: a.store.Size(),
		TotalLogs:      len(snap.Events),
		TotalRecords:   len(snap.Records),
		TotalDays:      len(days),
		PresentToday:   presentToday,
		AbsentToday:    a.store.Size() - presentToday,
		LastUpdate:     snap.GeneratedAt,
		RealData:       snap.RealData,
		IDMatching:     matchingStats(snap.Diagnostics),
	}
}

func (a *Aggregator) ByDate(snap *attendance.Snapshot, date string) attendance.DayReport {
	byID := make(map[int]attendance.Record)
	for _, rec := range snap.Records {
		if rec.Date == date {
			byID[rec.EmployeeID] = rec
		}
	}

	records := make([]attendance.Record, 0, a.store.Size())
	for _, emp := range a.store.Employees() {
		if rec, ok := byID[emp.ID]; ok {
			records = append(records, rec)
		} else {
			records = append(records, AbsentRecord(emp, date))
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return a.collator.CompareString(records[i].EmployeeName, records[j].EmployeeName) < 0
	})

	return attendance.DayReport{
		Date:           date,
		DayName:        dayName(date),
		TotalEmployees: a.store.Size(),
		Stats:          dayStats(records),
		Records:        records,
	}
}

func (a *Aggregator) ByEmployee(snap *attendance.Snapshot, id int) (attendance.EmployeeReport, error) {
	emp, ok := a.store.ByID(id)
	if !ok {
		return attendance.EmployeeReport{}, roster.ErrEmployeeNotFound
	}

	// Snapshot records are already newest-first; filtering preserves that.
	var records []attendance.Record
	for _, rec := range snap.Records {
		if rec.EmployeeID == id {
			records = append(records, rec)
		}
	}

	stats := attendance.EmployeeStats{TotalDays: len(records)}
	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusOnTime, attendance.StatusPresent:
			stats.PresentDays++
		case attendance.StatusLate:
			stats.LateDays++
		case attendance.StatusInProgress:
			stats.InProgressDays++
		}
	}
	total, withHours := sumHours(records)
	stats.TotalHours = formatHours(total)
	stats.AverageHours = averageHours(total, withHours)
	if len(records) > 0 {
		stats.LatestDate = records[0].Date
		stats.EarliestDate = records[len(records)-1].Date
	}

	return attendance.EmployeeReport{
		Employee: employeeInfo(emp),
		Stats:    stats,
		Records:  records,
	}, nil
}

func (a *Aggregator) ByEmployeeAndDate(snap *attendance.Snapshot, id int, date string) (attendance.EmployeeDayReport, error) {
	emp, ok := a.store.ByID(id)
	if !ok {
		return attendance.EmployeeDayReport{}, roster.ErrEmployeeNotFound
	}

	record := AbsentRecord(emp, date)
	for _, rec := range snap.Records {
		if rec.EmployeeID == id && rec.Date == date {
			record = rec
			break
		}
	}

	return attendance.EmployeeDayReport{
		Employee: employeeInfo(emp),
		Date:     date,
		Record:   record,
	}, nil
}

func (a *Aggregator) Report(snap *attendance.Snapshot, start, end string) attendance.RangeReport {
	var filtered []attendance.Record
	days := make(map[string]*attendance.DayRollup)
	for _, rec := range snap.Records {
		if rec.Date < start || rec.Date > end {
			continue
		}
		filtered = append(filtered, rec)

		day, ok := days[rec.Date]
		if !ok {
			day = &attendance.DayRollup{Date: rec.Date, DayName: rec.DayName, TotalHours: "0.00"}
			days[rec.Date] = day
		}
		switch rec.Status {
		case attendance.StatusOnTime, attendance.StatusPresent:
			day.Present++
		case attendance.StatusLate:
			day.Late++
		case attendance.StatusInProgress:
			day.InProgress++
		}
	}

	byDay := make([]attendance.DayRollup, 0, len(days))
	for date, day := range days {
		total, _ := sumHours(recordsForDate(filtered, date))
		day.TotalHours = formatHours(total)
		byDay = append(byDay, *day)
	}
	sort.Slice(byDay, func(i, j int) bool { return byDay[i].Date < byDay[j].Date })

	return attendance.RangeReport{
		Start:        start,
		End:          end,
		TotalDays:    len(days),
		TotalRecords: len(filtered),
		ByDay:        byDay,
		ByEmployee:   a.employeeRollups(filtered),
		Records:      filtered,
	}
}

func (a *Aggregator) DetailedStats(snap *attendance.Snapshot, today string) attendance.DetailedStats {
	stats := attendance.DetailedStats{
		TotalEmployees: a.store.Size(),
		IDMatching:     matchingStats(snap.Diagnostics),
	}
	for _, rec := range snap.Records {
		if rec.Date != today {
			continue
		}
		switch rec.Status {
		case attendance.StatusOnTime, attendance.StatusPresent:
			stats.PresentToday++
		case attendance.StatusLate:
			stats.LateToday++
		case attendance.StatusInProgress:
			stats.InProgressToday++
		}
	}
	stats.AbsentToday = stats.TotalEmployees - stats.PresentToday - stats.LateToday - stats.InProgressToday

	total, withHours := sumHours(snap.Records)
	stats.AverageHours = averageHours(total, withHours)

	days := make(map[string]bool)
	for _, rec := range snap.Records {
		days[rec.Date] = true
	}
	byDay := make([]attendance.DayRollup, 0, len(days))
	for date := range days {
		dayRecords := recordsForDate(snap.Records, date)
		roll := attendance.DayRollup{Date: date, DayName: dayName(date)}
		for _, rec := range dayRecords {
			switch rec.Status {
			case attendance.StatusOnTime, attendance.StatusPresent:
				roll.Present++
			case attendance.StatusLate:
				roll.Late++
			case attendance.StatusInProgress:
				roll.InProgress++
			}
		}
		dayTotal, _ := sumHours(dayRecords)
		roll.TotalHours = formatHours(dayTotal)
		byDay = append(byDay, roll)
	}
	sort.Slice(byDay, func(i, j int) bool { return byDay[i].Date > byDay[j].Date })
	stats.ByDay = byDay
	stats.ByEmployee = a.employeeRollups(snap.Records)

	return stats
}

func (a *Aggregator) AvailableDates(snap *attendance.Snapshot) []attendance.DateOverview {
	days := make(map[string]bool)
	for _, rec := range snap.Records {
		days[rec.Date] = true
	}

	overviews := make([]attendance.DateOverview, 0, len(days))
	for date := range days {
		dayRecords := recordsForDate(snap.Records, date)
		ov := attendance.DateOverview{
			Date:           date,
			DayName:        dayName(date),
			TotalEmployees: a.store.Size(),
			Absent:         a.store.Size() - len(dayRecords),
		}
		for _, rec := range dayRecords {
			switch rec.Status {
			case attendance.StatusOnTime, attendance.StatusPresent:
				ov.Present++
			case attendance.StatusLate:
				ov.Late++
			case attendance.StatusInProgress:
				ov.InProgress++
			}
		}
		total, _ := sumHours(dayRecords)
		ov.TotalHours = formatHours(total)
		overviews = append(overviews, ov)
	}
	sort.Slice(overviews, func(i, j int) bool { return overviews[i].Date > overviews[j].Date })
	return overviews
}

// employeeRollups aggregates records per roster employee, covering the whole
// roster so employees without records still appear with zero totals.
func (a *Aggregator) employeeRollups(records []attendance.Record) []attendance.EmployeeRollup {
	rollups := make([]attendance.EmployeeRollup, 0, a.store.Size())
	for _, emp := range a.store.Employees() {
		roll := attendance.EmployeeRollup{Employee: employeeInfo(emp)}
		var empRecords []attendance.Record
		for _, rec := range records {
			if rec.EmployeeID != emp.ID {
				continue
			}
			empRecords = append(empRecords, rec)
			switch rec.Status {
			case attendance.StatusOnTime, attendance.StatusPresent:
				roll.PresentDays++
			case attendance.StatusLate:
				roll.LateDays++
			case attendance.StatusInProgress:
				roll.InProgressDays++
			}
		}
		roll.TotalDays = len(empRecords)
		total, withHours := sumHours(empRecords)
		roll.TotalHours = formatHours(total)
		roll.AverageHours = averageHours(total, withHours)
		rollups = append(rollups, roll)
	}
	sort.SliceStable(rollups, func(i, j int) bool {
		return a.collator.CompareString(rollups[i].Employee.Name, rollups[j].Employee.Name) < 0
	})
	return rollups
}

func employeeInfo(emp roster.Employee) attendance.EmployeeInfo {
	return attendance.EmployeeInfo{
		ID:     emp.ID,
		Code:   emp.Code,
		Name:   emp.DisplayName,
		CardNo: rosterstore.CardNo(emp.Code),
	}
}

func dayStats(records []attendance.Record) attendance.DayStats {
	stats := attendance.DayStats{Total: len(records)}
	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusOnTime, attendance.StatusPresent:
			stats.Present++
		case attendance.StatusLate:
			stats.Late++
		case attendance.StatusInProgress:
			stats.InProgress++
		case attendance.StatusAbsent:
			stats.Absent++
		}
	}
	total, withHours := sumHours(records)
	stats.AverageHours = averageHours(total, withHours)
	return stats
}

func matchingStats(d attendance.Diagnostics) attendance.MatchingStats {
	stats := attendance.MatchingStats{
		UniqueIdentifiers: d.UniqueIdentifiers,
		Matched:           d.MatchedIdentifiers,
		Unmatched:         d.UniqueIdentifiers - d.MatchedIdentifiers,
		MatchRate:         "0%",
	}
	if d.UniqueIdentifiers > 0 {
		rate := float64(d.MatchedIdentifiers) / float64(d.UniqueIdentifiers) * 100
		stats.MatchRate = strconv.FormatFloat(rate, 'f', 1, 64) + "%"
	}
	return stats
}

func recordsForDate(records []attendance.Record, date string) []attendance.Record {
	var out []attendance.Record
	for _, rec := range records {
		if rec.Date == date {
			out = append(out, rec)
		}
	}
	return out
}

// sumHours totals worked hours across records, also counting how many records
// contributed a positive amount (the denominator for averages).
func sumHours(records []attendance.Record) (float64, int) {
	var total float64
	withHours := 0
	for _, rec := range records {
		h, err := strconv.ParseFloat(rec.HoursWorked, 64)
		if err != nil || h <= 0 {
			continue
		}
		total += h
		withHours++
	}
	return total, withHours
}

func averageHours(total float64, withHours int) string {
	if withHours == 0 {
		return "0.00"
	}
	return formatHours(total / float64(withHours))
}
