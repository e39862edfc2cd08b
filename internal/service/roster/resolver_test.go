package roster

import (
	"testing"

	"github.com/STS-Engineer/back-pointeuse/internal/domain/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore() *Store {
	return NewStore([]roster.Employee{
		{ID: 1, Code: "1", DisplayName: "Ben Salah Ahmed", Aliases: []string{"40001"}},
		{ID: 14, Code: "14", DisplayName: "Trabelsi Mouna", Aliases: []string{"40014"}},
		{ID: 56, Code: "56", DisplayName: "Gharbi Sami", Aliases: []string{"40056"}},
		{ID: 121, Code: "121", DisplayName: "Jebali Rim", Aliases: []string{"400121"}},
	})
}

func TestResolveExactCode(t *testing.T) {
	t.Parallel()
	r := NewResolver(testStore())

	emp, ok := r.Resolve("56")
	require.True(t, ok)
	assert.Equal(t, 56, emp.ID)
}

func TestResolveAlias(t *testing.T) {
	t.Parallel()
	r := NewResolver(testStore())

	emp, ok := r.Resolve("40056")
	require.True(t, ok)
	assert.Equal(t, 56, emp.ID)
}

func TestResolvePrefixedPaddedForms(t *testing.T) {
	t.Parallel()
	r := NewResolver(testStore())

	cases := map[string]int{
		"4001":   1,   // prefix + bare code
		"40001":  1,   // prefix + 2-digit padding
		"400001": 1,   // prefix + 3-digit padding
		"400014": 14,  // prefix + padded two-digit code
		"400121": 121, // three-digit code needs no padding
	}
	for raw, wantID := range cases {
		emp, ok := r.Resolve(raw)
		require.True(t, ok, "Resolve(%q)", raw)
		assert.Equal(t, wantID, emp.ID, "Resolve(%q)", raw)
	}
}

func TestResolvePrefixStripToleratesLeadingZeros(t *testing.T) {
	t.Parallel()
	r := NewResolver(testStore())

	emp, ok := r.Resolve("400056")
	require.True(t, ok)
	assert.Equal(t, 56, emp.ID)
}

func TestResolveNumericCoercion(t *testing.T) {
	t.Parallel()
	r := NewResolver(testStore())

	// A zero-padded identifier with no device prefix still resolves through
	// integer comparison: "056" and "56" are the same number.
	emp, ok := r.Resolve("056")
	require.True(t, ok)
	assert.Equal(t, 56, emp.ID)
}

func TestResolveAbsentIdentifier(t *testing.T) {
	t.Parallel()
	r := NewResolver(testStore())

	for _, raw := range []string{"", "0", "   ", " 0 "} {
		_, ok := r.Resolve(raw)
		assert.False(t, ok, "Resolve(%q)", raw)
	}
}

func TestResolveUnknownIdentifier(t *testing.T) {
	t.Parallel()
	r := NewResolver(testStore())

	for _, raw := range []string{"999", "400999", "abc", "-14"} {
		_, ok := r.Resolve(raw)
		assert.False(t, ok, "Resolve(%q)", raw)
	}
}

func TestResolveDeterministic(t *testing.T) {
	t.Parallel()
	r := NewResolver(testStore())

	first, ok1 := r.Resolve("40014")
	second, ok2 := r.Resolve("40014")
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, first, second)
}

func TestStoreByID(t *testing.T) {
	t.Parallel()
	s := testStore()

	emp, ok := s.ByID(14)
	require.True(t, ok)
	assert.Equal(t, "Trabelsi Mouna", emp.DisplayName)

	_, ok = s.ByID(999)
	assert.False(t, ok)
}

func TestCardNo(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "EMP001", CardNo("1"))
	assert.Equal(t, "EMP014", CardNo("14"))
	assert.Equal(t, "EMP121", CardNo("121"))
	assert.Equal(t, "EMP1234", CardNo("1234"))
}
