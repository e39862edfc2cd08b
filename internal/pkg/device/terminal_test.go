package device

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/STS-Engineer/back-pointeuse/internal/domain/device"
	"github.com/stretchr/testify/assert"
)

func TestTerminalNoAddressConfigured(t *testing.T) {
	t.Parallel()

	term := NewTerminal("", 4370, time.Second, time.UTC)
	_, err := term.FetchEvents(context.Background())
	assert.ErrorIs(t, err, device.ErrDeviceUnreachable)
}

func TestTerminalDialFailure(t *testing.T) {
	t.Parallel()

	term := NewTerminal("192.0.2.1", 4370, time.Second, time.UTC)
	term.dial = func(_ context.Context, _, _ string) (net.Conn, error) {
		return nil, errors.New("connection refused")
	}

	_, err := term.FetchEvents(context.Background())
	assert.ErrorIs(t, err, device.ErrDeviceUnreachable)
}

func TestTerminalName(t *testing.T) {
	t.Parallel()

	term := NewTerminal("10.0.0.5", 4370, time.Second, time.UTC)
	assert.Equal(t, "terminal(10.0.0.5:4370)", term.Name())
}
