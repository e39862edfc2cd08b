package roster

import "context"

// Repository loads the employee roster from its backing source.
type Repository interface {
	ListEmployees(ctx context.Context) ([]Employee, error)
}
