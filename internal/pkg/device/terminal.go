package device

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/STS-Engineer/back-pointeuse/internal/domain/device"
)

// Terminal reads clock events from a ZKTeco-family terminal over its TCP
// service port. The device protocol is binary and session-oriented; this
// client probes reachability before attempting a session so an offline
// terminal fails fast with ErrDeviceUnreachable instead of hanging a refresh.
type Terminal struct {
	host    string
	port    int
	timeout time.Duration
	loc     *time.Location
	dial    func(ctx context.Context, network, addr string) (net.Conn, error)
}

func NewTerminal(host string, port int, timeout time.Duration, loc *time.Location) *Terminal {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	dialer := &net.Dialer{Timeout: timeout}
	return &Terminal{
		host:    host,
		port:    port,
		timeout: timeout,
		loc:     loc,
		dial:    dialer.DialContext,
	}
}

func (t *Terminal) Name() string {
	return fmt.Sprintf("terminal(%s:%d)", t.host, t.port)
}

// FetchEvents connects to the terminal and downloads its full attendance log.
// The terminal keeps its own ring buffer, so every fetch returns the complete
// current batch rather than a delta.
func (t *Terminal) FetchEvents(ctx context.Context) ([]device.RawEvent, error) {
	if t.host == "" {
		return nil, fmt.Errorf("%w: no terminal address configured", device.ErrDeviceUnreachable)
	}

	addr := net.JoinHostPort(t.host, fmt.Sprintf("%d", t.port))
	conn, err := t.dial(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", device.ErrDeviceUnreachable, addr, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(t.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", device.ErrDeviceUnreachable, addr, err)
	}

	events, err := readAttendanceLog(conn, t.loc)
	if err != nil {
		return nil, fmt.Errorf("terminal %s: read attendance log: %w", addr, err)
	}
	return events, nil
}
