package device

import "errors"

// Device acquisition errors
var (
	ErrDeviceUnreachable = errors.New("clock terminal unreachable")
)
