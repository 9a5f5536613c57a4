package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/cascade-admin/locations/internal/domain"
	"github.com/cascade-admin/locations/pkg/validator"
)

type cityFixture struct {
	name string
}

type regionFixture struct {
	name   string
	cities []cityFixture
}

type countryFixture struct {
	name    string
	regions []regionFixture
}

// Fixtures are inserted country by country, then region by region, then city
// by city, so ids on a fresh database are stable: France is 1, Hauts-de-France
// is 2, Bavaria is 5, Paris is 1, Lille is 4 and Munich is 8.
var fixtures = []countryFixture{
	{
		name: "France",
		regions: []regionFixture{
			{name: "Île-de-France", cities: []cityFixture{{"Paris"}, {"Chaville"}, {"Sèvres"}}},
			{name: "Hauts-de-France", cities: []cityFixture{{"Lille"}, {"Amiens"}}},
			{name: "Normandie", cities: []cityFixture{{"Caen"}}},
		},
	},
	{
		name: "Germany",
		regions: []regionFixture{
			{name: "Baden-Württemberg", cities: []cityFixture{{"Stuttgart"}}},
			{name: "Bavaria", cities: []cityFixture{{"Munich"}, {"Nürnberg"}, {"Augsburg"}}},
		},
	},
}

// Seed loads the reference countries, regions and cities in one transaction.
// It does nothing when countries already exist.
func Seed(ctx context.Context, dbConn *sqlx.DB) (bool, error) {
	countries, err := NewRepositories(dbConn).Countries.GetAll(ctx)
	if err != nil {
		return false, err
	}
	if len(countries) > 0 {
		return false, nil
	}

	tx, err := dbConn.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := seedFixtures(ctx, newRepositories(tx)); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit seed transaction: %w", err)
	}

	return true, nil
}

func seedFixtures(ctx context.Context, repos *Repositories) error {
	// Countries first, then regions, then cities, matching the id order
	// documented on fixtures.
	countryIDs := make([]int64, len(fixtures))
	for i, cf := range fixtures {
		country := &domain.Country{Name: cf.name}
		if err := validateFixture(country); err != nil {
			return err
		}
		if err := repos.Countries.Create(ctx, country); err != nil {
			return err
		}
		countryIDs[i] = country.ID
	}

	regionIDs := make([][]int64, len(fixtures))
	for i, cf := range fixtures {
		regionIDs[i] = make([]int64, len(cf.regions))
		for j, rf := range cf.regions {
			region := &domain.Region{CountryID: countryIDs[i], Name: rf.name}
			if err := validateFixture(region); err != nil {
				return err
			}
			if err := repos.Regions.Create(ctx, region); err != nil {
				return err
			}
			regionIDs[i][j] = region.ID
		}
	}

	for i, cf := range fixtures {
		for j, rf := range cf.regions {
			for _, ctf := range rf.cities {
				city := &domain.City{RegionID: regionIDs[i][j], Name: ctf.name}
				if err := validateFixture(city); err != nil {
					return err
				}
				if err := repos.Cities.Create(ctx, city); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func validateFixture(entity any) error {
	if err := validator.Struct(entity); err != nil {
		return fmt.Errorf("invalid fixture %+v: %w", entity, err)
	}
	return nil
}
