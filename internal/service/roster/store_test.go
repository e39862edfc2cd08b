package roster

import (
	"context"
	"errors"
	"testing"

	"github.com/STS-Engineer/back-pointeuse/internal/domain/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepository struct {
	employees []roster.Employee
	err       error
}

func (s *stubRepository) ListEmployees(_ context.Context) ([]roster.Employee, error) {
	return s.employees, s.err
}

func TestLoadStore(t *testing.T) {
	t.Parallel()

	repo := &stubRepository{employees: []roster.Employee{
		{ID: 1, Code: "1", DisplayName: "Ben Salah Ahmed"},
		{ID: 2, Code: "2", DisplayName: "Trabelsi Mouna"},
	}}

	store, err := LoadStore(context.Background(), repo)
	require.NoError(t, err)
	assert.Equal(t, 2, store.Size())
}

func TestLoadStoreEmptyRoster(t *testing.T) {
	t.Parallel()

	_, err := LoadStore(context.Background(), &stubRepository{})
	assert.ErrorIs(t, err, roster.ErrEmptyRoster)
}

func TestLoadStoreRepositoryError(t *testing.T) {
	t.Parallel()

	repoErr := errors.New("connection refused")
	_, err := LoadStore(context.Background(), &stubRepository{err: repoErr})
	assert.ErrorIs(t, err, repoErr)
}
