package device

import "context"

// RawEvent is one clock event exactly as reported by an acquisition source.
// Field names vary across terminal firmwares (enrollNumber vs PIN vs user_id,
// record_time vs timestamp, string vs epoch timestamps), so the payload is kept
// as an untyped map and interpreted downstream by the event normalizer.
type RawEvent struct {
	Payload map[string]any
}

// Source is the acquisition collaborator: it returns the full batch of raw
// clock events currently held by a terminal (or a stand-in for one).
type Source interface {
	// Name identifies the source in logs and refresh results.
	Name() string

	// FetchEvents returns every raw event the source holds. The batch is
	// re-fetched in full on every refresh; nothing is incremental.
	FetchEvents(ctx context.Context) ([]RawEvent, error)
}
