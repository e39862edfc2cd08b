package static

import (
	"context"

	"github.com/STS-Engineer/back-pointeuse/internal/domain/roster"
	"github.com/STS-Engineer/back-pointeuse/internal/fixtures"
)

type rosterRepositoryImpl struct {
	employees []roster.Employee
}

// NewRosterRepository serves the compiled-in roster. Used when no database is
// configured; the roster then changes only with a new build.
func NewRosterRepository() roster.Repository {
	return &rosterRepositoryImpl{employees: fixtures.DefaultRoster()}
}

// ListEmployees implements roster.Repository.
func (r *rosterRepositoryImpl) ListEmployees(_ context.Context) ([]roster.Employee, error) {
	return r.employees, nil
}
