package registry

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAssignsSequentialIDs(t *testing.T) {
	r := New()

	first, err := r.Create("María García", "maria@ejemplo.com")
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "María García", first.Name)
	assert.Equal(t, "maria@ejemplo.com", first.Email)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := r.Create("Carlos López", "carlos@ejemplo.com")
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	records, err := r.List()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, first, records[0])
	assert.Equal(t, second, records[1])

	got, err := r.Get(1)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	_, err = r.Get(3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		inName  string
		inEmail string
		missing []string
	}{
		{"missing name", "", "a@b.com", []string{"name"}},
		{"missing email", "Name", "", []string{"email"}},
		{"missing both", "", "", []string{"name", "email"}},
		{"whitespace only", " ", " ", []string{"name", "email"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := New()
			_, err := r.Create(tc.inName, tc.inEmail)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tc.missing, verr.Fields)

			// No partial mutation: collection and counter untouched.
			assert.Equal(t, 0, r.Len())
			rec, err := r.Create("ok", "ok@example.com")
			require.NoError(t, err)
			assert.Equal(t, 1, rec.ID)
		})
	}
}

func TestCreateTrimsWhitespace(t *testing.T) {
	r := New()
	rec, err := r.Create("  Ana  ", "  ana@ejemplo.com ")
	require.NoError(t, err)
	assert.Equal(t, "Ana", rec.Name)
	assert.Equal(t, "ana@ejemplo.com", rec.Email)
}

func TestCreateAllowsDuplicateEmails(t *testing.T) {
	r := New()
	_, err := r.Create("Ana", "same@ejemplo.com")
	require.NoError(t, err)
	rec, err := r.Create("Eva", "same@ejemplo.com")
	require.NoError(t, err)
	assert.Equal(t, 2, rec.ID)
}

func TestGetBoundaries(t *testing.T) {
	r := New()

	_, err := r.Get(0)
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = r.Get(-1)
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = r.Get(999999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListReturnsSnapshot(t *testing.T) {
	r := New()
	_, err := r.Create("Ana", "ana@ejemplo.com")
	require.NoError(t, err)

	first, err := r.List()
	require.NoError(t, err)

	// Mutating the returned slice must not leak into the registry.
	first[0].Name = "mutated"

	second, err := r.List()
	require.NoError(t, err)
	assert.Equal(t, "Ana", second[0].Name)

	// Idempotent reads: two lists with no intervening create are equal.
	third, err := r.List()
	require.NoError(t, err)
	assert.Equal(t, second, third)
}

func TestConcurrentCreates(t *testing.T) {
	r := New()
	const n = 100

	var wg sync.WaitGroup
	ids := make(chan int, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec, err := r.Create(fmt.Sprintf("user-%d", i), fmt.Sprintf("user-%d@ejemplo.com", i))
			if err != nil {
				t.Errorf("concurrent create failed: %v", err)
				return
			}
			ids <- rec.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	// The assigned identifiers must be exactly {1..n}: no gaps, no
	// duplicates.
	seen := make(map[int]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	require.Len(t, seen, n)
	for k := 1; k <= n; k++ {
		assert.True(t, seen[k], "missing id %d", k)
	}

	records, err := r.List()
	require.NoError(t, err)
	assert.Len(t, records, n)
}

func TestConcurrentReadsDuringCreates(t *testing.T) {
	r := New()
	const n = 50

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Create(fmt.Sprintf("user-%d", i), fmt.Sprintf("user-%d@ejemplo.com", i))
		}(i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			records, err := r.List()
			if err != nil {
				t.Errorf("List failed: %v", err)
				return
			}
			// A reader never sees a torn record: every listed record has
			// its fields fully assigned.
			for _, rec := range records {
				if rec.ID <= 0 || rec.Name == "" || rec.Email == "" || rec.CreatedAt.IsZero() {
					t.Errorf("torn record observed: %+v", rec)
				}
			}
		}()
	}
	wg.Wait()
}
