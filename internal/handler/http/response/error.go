package response

import (
	"errors"
	"net/http"

	"github.com/STS-Engineer/back-pointeuse/internal/domain/attendance"
	"github.com/STS-Engineer/back-pointeuse/internal/domain/device"
	"github.com/STS-Engineer/back-pointeuse/internal/domain/roster"
	"github.com/STS-Engineer/back-pointeuse/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Roster domain errors
	case errors.Is(err, roster.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidDate):
		BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
	case errors.Is(err, attendance.ErrInvalidDateRange):
		BadRequest(w, "Invalid date range, start must not be after end", nil)

	// Device errors
	case errors.Is(err, device.ErrDeviceUnreachable):
		ServiceUnavailable(w, "Clock terminal unreachable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
