package roster

import (
	"context"
	"fmt"
	"strings"

	"github.com/STS-Engineer/back-pointeuse/internal/domain/roster"
)

// Store is the immutable in-memory roster table. It is built once from a
// roster.Repository and never mutated afterwards; concurrent reads need no
// locking.
type Store struct {
	employees []roster.Employee
	byID      map[int]int // employee ID -> index into employees
}

// LoadStore reads the full roster from repo and builds the lookup table.
func LoadStore(ctx context.Context, repo roster.Repository) (*Store, error) {
	employees, err := repo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	if len(employees) == 0 {
		return nil, roster.ErrEmptyRoster
	}
	return NewStore(employees), nil
}

// NewStore builds a Store over an already-materialized employee list.
func NewStore(employees []roster.Employee) *Store {
	s := &Store{
		employees: employees,
		byID:      make(map[int]int, len(employees)),
	}
	for i, emp := range employees {
		s.byID[emp.ID] = i
	}
	return s
}

// Employees returns the roster in load order. Callers must treat the slice as
// read-only.
func (s *Store) Employees() []roster.Employee {
	return s.employees
}

// ByID looks up one employee by internal key.
func (s *Store) ByID(id int) (roster.Employee, bool) {
	i, ok := s.byID[id]
	if !ok {
		return roster.Employee{}, false
	}
	return s.employees[i], true
}

// Size returns the number of roster employees.
func (s *Store) Size() int {
	return len(s.employees)
}

// CardNo derives the badge number printed on an employee card from the
// payroll code, e.g. code "1" -> "EMP001".
func CardNo(code string) string {
	return "EMP" + padCode(code, 3)
}

func padCode(code string, width int) string {
	if len(code) >= width {
		return code
	}
	return strings.Repeat("0", width-len(code)) + code
}
