package attendance

import "time"

// ========================================
// ATTENDANCE DTOs
// ========================================

// MatchingStats reports how well raw terminal identifiers map onto the roster.
type MatchingStats struct {
	UniqueIdentifiers int    `json:"unique_identifiers"`
	Matched           int    `json:"matched"`
	Unmatched         int    `json:"unmatched"`
	MatchRate         string `json:"match_rate"` // e.g. "97.5%"
}

// Summary is the top-level overview of the current snapshot.
type Summary struct {
	SnapshotID     string        `json:"snapshot_id"`
	TotalEmployees int           `json:"total_employees"`
	TotalLogs      int           `json:"total_logs"`
	TotalRecords   int           `json:"total_records"`
	TotalDays      int           `json:"total_days"`
	PresentToday   int           `json:"present_today"` // any non-absent status counts as present
	AbsentToday    int           `json:"absent_today"`
	LastUpdate     time.Time     `json:"last_update"`
	RealData       bool          `json:"real_data"`
	IDMatching     MatchingStats `json:"id_matching"`
}

// DayStats breaks one day's records down by status. Present counts only the
// on_time and present tiers; in_progress and late are reported separately.
type DayStats struct {
	Total        int    `json:"total"`
	Present      int    `json:"present"`
	Late         int    `json:"late"`
	InProgress   int    `json:"in_progress"`
	Absent       int    `json:"absent"`
	AverageHours string `json:"average_hours"`
}

// DayReport lists every roster employee for one date, with absent placeholders
// synthesized for employees who have no record.
type DayReport struct {
	Date           string   `json:"date"`
	DayName        string   `json:"day_name"`
	TotalEmployees int      `json:"total_employees"`
	Stats          DayStats `json:"stats"`
	Records        []Record `json:"records"`
}

// EmployeeInfo is the roster identity echoed in employee-scoped responses.
type EmployeeInfo struct {
	ID     int    `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	CardNo string `json:"card_no"`
}

// EmployeeStats aggregates one employee's records.
type EmployeeStats struct {
	TotalDays      int    `json:"total_days"`
	PresentDays    int    `json:"present_days"`
	LateDays       int    `json:"late_days"`
	InProgressDays int    `json:"in_progress_days"`
	TotalHours     string `json:"total_hours"`
	AverageHours   string `json:"average_hours"`
	EarliestDate   string `json:"earliest_date,omitempty"`
	LatestDate     string `json:"latest_date,omitempty"`
}

// EmployeeReport is one employee's full history, newest first.
type EmployeeReport struct {
	Employee EmployeeInfo  `json:"employee"`
	Stats    EmployeeStats `json:"stats"`
	Records  []Record      `json:"records"`
}

// EmployeeDayReport is the zero-or-one record lookup for (employee, date).
// When no record exists an absent placeholder is returned instead of nothing.
type EmployeeDayReport struct {
	Employee EmployeeInfo `json:"employee"`
	Date     string       `json:"date"`
	Record   Record       `json:"record"`
}

// DateOverview is one line of the available-dates listing.
type DateOverview struct {
	Date           string `json:"date"`
	DayName        string `json:"day_name"`
	TotalEmployees int    `json:"total_employees"`
	Present        int    `json:"present"`
	Late           int    `json:"late"`
	InProgress     int    `json:"in_progress"`
	Absent         int    `json:"absent"`
	TotalHours     string `json:"total_hours"`
}

// DayRollup is the per-day aggregate inside a range report.
type DayRollup struct {
	Date       string `json:"date"`
	DayName    string `json:"day_name"`
	Present    int    `json:"present"`
	Late       int    `json:"late"`
	InProgress int    `json:"in_progress"`
	TotalHours string `json:"total_hours"`
}

// EmployeeRollup is the per-employee aggregate inside a range report.
type EmployeeRollup struct {
	Employee       EmployeeInfo `json:"employee"`
	TotalDays      int          `json:"total_days"`
	PresentDays    int          `json:"present_days"`
	LateDays       int          `json:"late_days"`
	InProgressDays int          `json:"in_progress_days"`
	TotalHours     string       `json:"total_hours"`
	AverageHours   string       `json:"average_hours"`
}

// RangeReport covers an inclusive date range with nested rollups.
type RangeReport struct {
	Start        string           `json:"start"`
	End          string           `json:"end"`
	TotalDays    int              `json:"total_days"`
	TotalRecords int              `json:"total_records"`
	ByDay        []DayRollup      `json:"by_day"`
	ByEmployee   []EmployeeRollup `json:"by_employee"`
	Records      []Record         `json:"records"`
}

// DetailedStats is the extended statistics block behind /summary?detailed=true.
type DetailedStats struct {
	TotalEmployees  int              `json:"total_employees"`
	PresentToday    int              `json:"present_today"`
	LateToday       int              `json:"late_today"`
	InProgressToday int              `json:"in_progress_today"`
	AbsentToday     int              `json:"absent_today"`
	AverageHours    string           `json:"average_hours"`
	ByDay           []DayRollup      `json:"by_day"`
	ByEmployee      []EmployeeRollup `json:"by_employee"`
	IDMatching      MatchingStats    `json:"id_matching"`
}

// RefreshResult describes one recompute run.
type RefreshResult struct {
	SnapshotID   string `json:"snapshot_id"`
	EventsCount  int    `json:"events_count"`
	RecordsCount int    `json:"records_count"`
	RealData     bool   `json:"real_data"`
	Source       string `json:"source"`
}
