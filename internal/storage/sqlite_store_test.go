package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathwise/career-fit-engine/internal/catalog"
)

func openTestStore(t *testing.T) *CareerStore {
	t.Helper()

	store, err := OpenSQLite(filepath.Join(t.TempDir(), "careers.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.EnsureSchema())
	return store
}

func TestSeedCareersIsIdempotent(t *testing.T) {
	store := openTestStore(t)
	careers := catalog.BuiltIn()

	require.NoError(t, store.SeedCareers(careers))
	require.NoError(t, store.SeedCareers(careers))

	count, err := store.CountCareers()
	require.NoError(t, err)
	assert.Equal(t, len(careers), count)
}

func TestGetCareerRoundTrip(t *testing.T) {
	store := openTestStore(t)
	careers := catalog.BuiltIn()
	require.NoError(t, store.SeedCareers(careers))

	got, ok, err := store.GetCareer("Data Scientist")
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "Data Scientist", got.Title)
	assert.Equal(t, careers[0].MatchCriteria, got.MatchCriteria)
	assert.Equal(t, careers[0].SimpleCriteria, got.SimpleCriteria)
	assert.Equal(t, careers[0].Metadata, got.Metadata)

	_, ok, err = store.GetCareer("Astronaut")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListCareersFiltered(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.SeedCareers(catalog.BuiltIn()))

	// Case-insensitive search over title and description.
	careers, total, err := store.ListCareersFiltered(20, 0, "DATA", "")
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, careers, 2)
	assert.Equal(t, "Data Analyst", careers[0].Title)
	assert.Equal(t, "Data Scientist", careers[1].Title)

	careers, _, err = store.ListCareersFiltered(20, 0, "data", "title_desc")
	require.NoError(t, err)
	assert.Equal(t, "Data Scientist", careers[0].Title)
}

func TestListCareersPagination(t *testing.T) {
	store := openTestStore(t)
	all := catalog.BuiltIn()
	require.NoError(t, store.SeedCareers(all))

	page, total, err := store.ListCareers(5, 0)
	require.NoError(t, err)
	assert.Equal(t, len(all), total)
	assert.Len(t, page, 5)

	rest, _, err := store.ListCareers(20, 10)
	require.NoError(t, err)
	assert.Len(t, rest, len(all)-10)
}
