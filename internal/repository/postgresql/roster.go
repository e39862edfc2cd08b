package postgresql

import (
	"context"
	"fmt"

	"github.com/STS-Engineer/back-pointeuse/internal/domain/roster"
	"github.com/STS-Engineer/back-pointeuse/internal/pkg/database"
)

type rosterRepositoryImpl struct {
	db *database.DB
}

func NewRosterRepository(db *database.DB) roster.Repository {
	return &rosterRepositoryImpl{db: db}
}

// ListEmployees implements roster.Repository.
func (r *rosterRepositoryImpl) ListEmployees(ctx context.Context) ([]roster.Employee, error) {
	query := `
		SELECT id, code, display_name, COALESCE(aliases, '{}')
		FROM employees
		WHERE deleted_at IS NULL
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []roster.Employee
	for rows.Next() {
		var emp roster.Employee
		if err := rows.Scan(&emp.ID, &emp.Code, &emp.DisplayName, &emp.Aliases); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
