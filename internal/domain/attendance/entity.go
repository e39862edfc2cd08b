package attendance

import (
	"time"
)

// Role classifies one punch within a daily record. The terminal's own punch
// types are unreliable, so roles are re-derived from position: first punch of
// the day is the arrival, last punch is the departure, anything in between is
// a passage.
type Role string

const (
	RoleArrival   Role = "arrival"
	RoleDeparture Role = "departure"
	RolePassage   Role = "passage"
)

// Status is the derived attendance status for one employee on one day.
type Status string

const (
	StatusOnTime     Status = "on_time"     // arrived before 08:00
	StatusPresent    Status = "present"     // arrived between 08:00 and 09:00
	StatusLate       Status = "late"        // arrived after 09:00
	StatusInProgress Status = "in_progress" // single punch today, day not over
	StatusAbsent     Status = "absent"      // no qualifying punch on a business day
)

// ClockEvent is a raw event after normalization: one identifier string, one
// absolute instant, one state flag. Every raw event yields exactly one
// ClockEvent; filtering happens later in the session builder.
type ClockEvent struct {
	Identifier string    `json:"identifier"`
	Instant    time.Time `json:"timestamp"`
	State      int       `json:"state"`
	Fallback   bool      `json:"timestamp_fallback,omitempty"` // timestamp was unparseable, current time substituted
}

// Entry is a single punch inside a daily record.
type Entry struct {
	Instant time.Time `json:"timestamp"`
	Time    string    `json:"time"` // HH:MM in the business timezone
	Hour    int       `json:"hour"`
	Minute  int       `json:"minute"`
	Role    Role      `json:"role"`
}

// Record is the reconciled attendance of one employee on one calendar day.
// Records are created fresh on every recompute and never mutated afterwards.
// Invariant: entries are sorted ascending by instant; the first entry is the
// arrival, the last entry is the departure when there are at least two.
type Record struct {
	EmployeeID    int     `json:"employee_id"`
	Code          string  `json:"code"`
	EmployeeName  string  `json:"name"`
	CardNo        string  `json:"card_no"`
	Date          string  `json:"date"` // 2006-01-02 in the business timezone
	DayName       string  `json:"day_name"`
	Entries       []Entry `json:"entries"`
	ArrivalTime   *string `json:"arrival_time"`
	DepartureTime *string `json:"departure_time"`
	HoursWorked   string  `json:"hours_worked"` // decimal hours, 2dp, "0.00" when unknown
	Status        Status  `json:"status"`
}

// Diagnostics counts what the pipeline could not resolve. Purely informative:
// no diagnostic condition ever aborts a recompute.
type Diagnostics struct {
	TotalEvents        int `json:"total_events"`
	ResolvedEvents     int `json:"resolved_events"`
	UnresolvedEvents   int `json:"unresolved_events"`
	TimestampFallbacks int `json:"timestamp_fallbacks"`
	WeekendEvents      int `json:"weekend_events"`
	SkippedBuckets     int `json:"skipped_buckets"`
	UniqueIdentifiers  int `json:"unique_identifiers"`
	MatchedIdentifiers int `json:"matched_identifiers"`
}

// Snapshot is one complete recompute result, published atomically. Readers
// always see either the previous snapshot or this one, never a mix of the two.
type Snapshot struct {
	ID          string
	GeneratedAt time.Time
	RealData    bool // events came from a live terminal, not the mock source
	Records     []Record
	Events      []ClockEvent
	Diagnostics Diagnostics
}
