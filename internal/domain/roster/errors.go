package roster

import "errors"

// Roster domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found in roster")
	ErrEmptyRoster      = errors.New("roster contains no employees")
)
