package attendance

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/STS-Engineer/back-pointeuse/internal/domain/attendance"
	"github.com/STS-Engineer/back-pointeuse/internal/domain/device"
)

// identifierFields is the priority order in which candidate identifier fields
// are probed. Terminal firmwares disagree on the field name; the first
// non-empty value wins.
var identifierFields = []string{
	"enrollNumber",
	"PIN",
	"user_id",
	"userId",
	"userid",
	"uid",
}

// timestampFields are the payload keys that may carry the punch instant.
var timestampFields = []string{"record_time", "timestamp"}

// timestampLayouts is the textual parser cascade, tried in order, first
// success wins. The list is data so a new firmware format can be appended
// without touching the parsing logic.
var timestampLayouts = []string{
	"Mon Jan 02 2006 15:04:05 GMT-0700", // textual dump format some firmwares emit
	"2006-01-02 15:04:05",
	"02/01/2006 15:04:05", // day-first; ambiguous against the month-first variant below
	"01/02/2006 15:04:05",
	time.RFC3339,
}

// Normalizer turns raw device payloads into canonical clock events. Every raw
// event yields exactly one ClockEvent; an unparseable timestamp falls back to
// the current time and is flagged, it never fails the batch.
type Normalizer struct {
	loc *time.Location
	now func() time.Time
}

func NewNormalizer(loc *time.Location, now func() time.Time) *Normalizer {
	if now == nil {
		now = time.Now
	}
	return &Normalizer{loc: loc, now: now}
}

func (n *Normalizer) Normalize(raw device.RawEvent) attendance.ClockEvent {
	ev := attendance.ClockEvent{
		Identifier: extractIdentifier(raw.Payload),
		State:      normalizeState(raw.Payload),
	}

	instant, ok := n.parseTimestamp(raw.Payload)
	if !ok {
		instant = n.now().In(n.loc)
		ev.Fallback = true
	}
	ev.Instant = instant
	return ev
}

// NormalizeAll maps a full raw batch; no event is dropped at this stage.
func (n *Normalizer) NormalizeAll(raws []device.RawEvent) []attendance.ClockEvent {
	events := make([]attendance.ClockEvent, 0, len(raws))
	for _, raw := range raws {
		events = append(events, n.Normalize(raw))
	}
	return events
}

func (n *Normalizer) parseTimestamp(payload map[string]any) (time.Time, bool) {
	for _, field := range timestampFields {
		v, ok := payload[field]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case time.Time:
			return t.In(n.loc), true
		case string:
			for _, layout := range timestampLayouts {
				if parsed, err := time.ParseInLocation(layout, t, n.loc); err == nil {
					return parsed, true
				}
			}
			return time.Time{}, false
		case float64:
			return time.Unix(int64(t), 0).In(n.loc), true
		case int:
			return time.Unix(int64(t), 0).In(n.loc), true
		case int64:
			return time.Unix(t, 0).In(n.loc), true
		default:
			return time.Time{}, false
		}
	}
	return time.Time{}, false
}

// extractIdentifier returns the first non-empty candidate field as a string,
// or the "0" sentinel when every candidate is absent.
func extractIdentifier(payload map[string]any) string {
	for _, field := range identifierFields {
		v, ok := payload[field]
		if !ok || v == nil {
			continue
		}
		if s := stringify(v); s != "" {
			return s
		}
	}
	return "0"
}

// normalizeState coerces the terminal state flag: state 4 and state 1 both
// mean "check" under this device family's encoding.
func normalizeState(payload map[string]any) int {
	state := intValue(payload["state"])
	if state == 4 {
		return 1
	}
	return state
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

func intValue(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case int:
		return t
	case int64:
		return int(t)
	case string:
		if n, err := strconv.Atoi(t); err == nil {
			return n
		}
	}
	return 0
}
