package attendance

import (
	"testing"
	"time"

	"github.com/STS-Engineer/back-pointeuse/internal/domain/device"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLoc = time.FixedZone("CET", 3600)

func fixedNow() time.Time {
	return time.Date(2024, 3, 15, 12, 0, 0, 0, testLoc)
}

func TestNormalizeTextualDumpFormat(t *testing.T) {
	t.Parallel()
	n := NewNormalizer(testLoc, fixedNow)

	ev := n.Normalize(device.RawEvent{Payload: map[string]any{
		"user_id":     "40056",
		"record_time": "Mon Mar 11 2024 08:15:30 GMT+0100",
	}})

	assert.Equal(t, "40056", ev.Identifier)
	assert.False(t, ev.Fallback)
	assert.Equal(t, 2024, ev.Instant.Year())
	assert.Equal(t, time.March, ev.Instant.Month())
	assert.Equal(t, 11, ev.Instant.Day())
}

func TestNormalizeISOFormat(t *testing.T) {
	t.Parallel()
	n := NewNormalizer(testLoc, fixedNow)

	ev := n.Normalize(device.RawEvent{Payload: map[string]any{
		"user_id":     "14",
		"record_time": "2024-03-11 08:15:30",
	}})

	require.False(t, ev.Fallback)
	assert.Equal(t, 8, ev.Instant.Hour())
	assert.Equal(t, 15, ev.Instant.Minute())
}

func TestNormalizeEpochSeconds(t *testing.T) {
	t.Parallel()
	n := NewNormalizer(testLoc, fixedNow)

	at := time.Date(2024, 3, 11, 8, 15, 30, 0, testLoc)
	ev := n.Normalize(device.RawEvent{Payload: map[string]any{
		"user_id":   "14",
		"timestamp": float64(at.Unix()),
	}})

	require.False(t, ev.Fallback)
	assert.True(t, ev.Instant.Equal(at))
}

func TestNormalizeNativeTime(t *testing.T) {
	t.Parallel()
	n := NewNormalizer(testLoc, fixedNow)

	at := time.Date(2024, 3, 11, 8, 15, 30, 0, time.UTC)
	ev := n.Normalize(device.RawEvent{Payload: map[string]any{
		"user_id":     "14",
		"record_time": at,
	}})

	require.False(t, ev.Fallback)
	assert.True(t, ev.Instant.Equal(at))
}

func TestNormalizeUnparseableTimestampFallsBack(t *testing.T) {
	t.Parallel()
	n := NewNormalizer(testLoc, fixedNow)

	ev := n.Normalize(device.RawEvent{Payload: map[string]any{
		"user_id":     "14",
		"record_time": "not a timestamp",
	}})

	assert.True(t, ev.Fallback)
	assert.True(t, ev.Instant.Equal(fixedNow()))
}

func TestNormalizeMissingTimestampFallsBack(t *testing.T) {
	t.Parallel()
	n := NewNormalizer(testLoc, fixedNow)

	ev := n.Normalize(device.RawEvent{Payload: map[string]any{"user_id": "14"}})

	assert.True(t, ev.Fallback)
	assert.True(t, ev.Instant.Equal(fixedNow()))
}

func TestNormalizeIdentifierFieldPriority(t *testing.T) {
	t.Parallel()
	n := NewNormalizer(testLoc, fixedNow)

	// enrollNumber wins over every other candidate field.
	ev := n.Normalize(device.RawEvent{Payload: map[string]any{
		"enrollNumber": "40001",
		"uid":          "999",
		"record_time":  "2024-03-11 08:00:00",
	}})
	assert.Equal(t, "40001", ev.Identifier)

	// With enrollNumber absent the next non-empty candidate wins.
	ev = n.Normalize(device.RawEvent{Payload: map[string]any{
		"PIN":         "40014",
		"uid":         "999",
		"record_time": "2024-03-11 08:00:00",
	}})
	assert.Equal(t, "40014", ev.Identifier)
}

func TestNormalizeNumericIdentifier(t *testing.T) {
	t.Parallel()
	n := NewNormalizer(testLoc, fixedNow)

	ev := n.Normalize(device.RawEvent{Payload: map[string]any{
		"user_id":     float64(56),
		"record_time": "2024-03-11 08:00:00",
	}})
	assert.Equal(t, "56", ev.Identifier)
}

func TestNormalizeMissingIdentifierSentinel(t *testing.T) {
	t.Parallel()
	n := NewNormalizer(testLoc, fixedNow)

	ev := n.Normalize(device.RawEvent{Payload: map[string]any{
		"record_time": "2024-03-11 08:00:00",
	}})
	assert.Equal(t, "0", ev.Identifier)
}

func TestNormalizeStateCoercion(t *testing.T) {
	t.Parallel()
	n := NewNormalizer(testLoc, fixedNow)

	ev := n.Normalize(device.RawEvent{Payload: map[string]any{
		"user_id":     "14",
		"record_time": "2024-03-11 08:00:00",
		"state":       4,
	}})
	assert.Equal(t, 1, ev.State)

	ev = n.Normalize(device.RawEvent{Payload: map[string]any{
		"user_id":     "14",
		"record_time": "2024-03-11 08:00:00",
		"state":       2,
	}})
	assert.Equal(t, 2, ev.State)
}

func TestNormalizeAllPreservesCount(t *testing.T) {
	t.Parallel()
	n := NewNormalizer(testLoc, fixedNow)

	raws := []device.RawEvent{
		{Payload: map[string]any{"user_id": "14", "record_time": "2024-03-11 08:00:00"}},
		{Payload: map[string]any{}},
		{Payload: map[string]any{"user_id": "56", "record_time": "garbage"}},
	}

	events := n.NormalizeAll(raws)
	assert.Len(t, events, len(raws))
}
