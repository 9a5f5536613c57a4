package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cascade-admin/locations/internal/config"
	"github.com/cascade-admin/locations/internal/db"
	"github.com/cascade-admin/locations/internal/domain"
)

func newMigratedDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dbConn, err := db.NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbConn.Close() })

	require.NoError(t, db.Migrate(dbConn, config.DriverSQLite))

	return dbConn
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	dbConn := newMigratedDB(t)

	seeded, err := Seed(ctx, dbConn)
	require.NoError(t, err)
	assert.True(t, seeded)

	repos := NewRepositories(dbConn)

	countries, err := repos.Countries.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Country{{ID: 1, Name: "France"}, {ID: 2, Name: "Germany"}}, countries)

	hdf, err := repos.Regions.GetOneByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.Region{ID: 2, CountryID: 1, Name: "Hauts-de-France"}, *hdf)

	bavaria, err := repos.Regions.GetOneByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.Region{ID: 5, CountryID: 2, Name: "Bavaria"}, *bavaria)

	for id, name := range map[int64]string{1: "Paris", 4: "Lille", 8: "Munich"} {
		city, err := repos.Cities.GetOneByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, name, city.Name)
	}

	var total int
	require.NoError(t, dbConn.GetContext(ctx, &total, `SELECT COUNT(*) FROM city`))
	assert.Equal(t, 10, total)
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	dbConn := newMigratedDB(t)

	_, err := Seed(ctx, dbConn)
	require.NoError(t, err)

	seeded, err := Seed(ctx, dbConn)
	require.NoError(t, err)
	assert.False(t, seeded)

	var total int
	require.NoError(t, dbConn.GetContext(ctx, &total, `SELECT COUNT(*) FROM region`))
	assert.Equal(t, 5, total)
}

func TestSeedRollsBackOnInsertFailure(t *testing.T) {
	dbConn, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM country ORDER BY id ASC;`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO country (name) VALUES (?);`)).
		WithArgs("France").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO country (name) VALUES (?);`)).
		WithArgs("Germany").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	seeded, err := Seed(context.Background(), dbConn)

	assert.False(t, seeded)
	assert.ErrorIs(t, err, assert.AnError)
}
