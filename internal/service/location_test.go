package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cascade-admin/locations/internal/domain"
)

func newTestServices(store *memStore) *Services {
	return NewServices(Deps{Repos: store.repositories()})
}

func TestLocations_CreateAndList(t *testing.T) {
	ctx := context.Background()
	services := newTestServices(newMemStore())

	views, err := services.Locations.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, views)

	form, location, err := services.Locations.Create(ctx, Submission{Country: "1", Region: "2", City: "4"})
	require.NoError(t, err)
	require.NotNil(t, location)
	assert.True(t, form.Valid())
	assert.Equal(t, int64(cityLille), location.CityID)
	assert.NotZero(t, location.ID)

	views, err = services.Locations.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.LocationView{
		{ID: location.ID, CountryName: "France", RegionName: "Hauts-de-France", CityName: "Lille"},
	}, views)
}

func TestLocations_CreateInvalidIsNotPersisted(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	services := newTestServices(store)

	for _, submission := range []Submission{
		{Country: "1", Region: "5", City: "8"},
		{Country: "1", Region: "2", City: "1"},
	} {
		form, location, err := services.Locations.Create(ctx, submission)
		require.NoError(t, err)
		assert.Nil(t, location)
		assert.Equal(t, FormInvalid, form.Status)
	}

	assert.Zero(t, store.callCount("locations.Create"))
}

func TestLocations_CreateStoreError(t *testing.T) {
	store := newMemStore()
	services := newTestServices(store)
	store.err = assert.AnError

	_, _, err := services.Locations.Create(context.Background(), Submission{Country: "1", Region: "2", City: "4"})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestLocations_Forms(t *testing.T) {
	ctx := context.Background()
	services := newTestServices(newMemStore())

	blank, err := services.Locations.NewForm(ctx)
	require.NoError(t, err)
	assert.Empty(t, blank.Region.Options)

	_, location, err := services.Locations.Create(ctx, Submission{Country: "1", Region: "2", City: "4"})
	require.NoError(t, err)

	edit, err := services.Locations.EditForm(ctx, location.ID)
	require.NoError(t, err)
	assert.Equal(t, "1", edit.Country.Value)
	assert.Equal(t, "2", edit.Region.Value)
	assert.Equal(t, "4", edit.City.Value)
	assert.Len(t, edit.Region.Options, 3)

	_, err = services.Locations.EditForm(ctx, 404)
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestLocations_Update(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	services := newTestServices(store)

	_, location, err := services.Locations.Create(ctx, Submission{Country: "1", Region: "2", City: "4"})
	require.NoError(t, err)

	form, _, err := services.Locations.Update(ctx, location.ID, Submission{Country: "2", Region: "2", City: "4"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{FieldRegion: MessageInvalid}, form.Errors())
	assert.Zero(t, store.callCount("locations.Update"))

	form, updated, err := services.Locations.Update(ctx, location.ID, Submission{Country: "2", Region: "5", City: "8"})
	require.NoError(t, err)
	assert.True(t, form.Valid())
	assert.Equal(t, int64(cityMunich), updated.CityID)

	stored, err := services.Locations.GetByID(ctx, location.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(cityMunich), stored.CityID)

	_, _, err = services.Locations.Update(ctx, 404, Submission{Country: "2", Region: "5", City: "8"})
	assert.ErrorIs(t, err, ErrLocationNotFound)
}
