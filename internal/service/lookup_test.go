package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cascade-admin/locations/internal/cache"
	"github.com/cascade-admin/locations/internal/domain"
)

func newTestLookup(store *memStore) *lookupService {
	repos := store.repositories()
	return newLookupService(repos.Countries, repos.Regions, newTestCascade(store, cache.Noop{}))
}

func TestRegionsForCountry(t *testing.T) {
	lookup := newTestLookup(newMemStore())

	regions, err := lookup.RegionsForCountry(context.Background(), countryFrance)
	require.NoError(t, err)
	assert.Equal(t, []domain.Option{
		{ID: 1, Name: "Île-de-France"},
		{ID: 2, Name: "Hauts-de-France"},
		{ID: 3, Name: "Normandie"},
	}, regions)
}

func TestRegionsForCountry_NotFound(t *testing.T) {
	lookup := newTestLookup(newMemStore())

	_, err := lookup.RegionsForCountry(context.Background(), 404)
	require.ErrorIs(t, err, ErrCountryNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegionsForCountry_NoRegions(t *testing.T) {
	store := newMemStore()
	spain := &domain.Country{Name: "Spain"}
	require.NoError(t, store.repositories().Countries.Create(context.Background(), spain))
	lookup := newTestLookup(store)

	regions, err := lookup.RegionsForCountry(context.Background(), spain.ID)
	require.NoError(t, err)
	assert.NotNil(t, regions)
	assert.Empty(t, regions)
}

func TestCitiesForRegion(t *testing.T) {
	lookup := newTestLookup(newMemStore())

	cities, err := lookup.CitiesForRegion(context.Background(), regionBavaria)
	require.NoError(t, err)
	assert.Equal(t, []domain.Option{
		{ID: 8, Name: "Munich"},
		{ID: 9, Name: "Nürnberg"},
		{ID: 10, Name: "Augsburg"},
	}, cities)
}

func TestCitiesForRegion_NotFound(t *testing.T) {
	lookup := newTestLookup(newMemStore())

	_, err := lookup.CitiesForRegion(context.Background(), 404)
	assert.ErrorIs(t, err, ErrRegionNotFound)
}

func TestLookup_StoreError(t *testing.T) {
	store := newMemStore()
	store.err = assert.AnError
	lookup := newTestLookup(store)

	_, err := lookup.RegionsForCountry(context.Background(), countryFrance)
	require.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
