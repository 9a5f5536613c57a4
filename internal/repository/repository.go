package repository

import (
	"context"
	"database/sql"

	"github.com/cascade-admin/locations/internal/domain"

	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Countries Countries
	Regions   Regions
	Cities    Cities
	Locations Locations
}

// queryer is satisfied by both *sqlx.DB and *sqlx.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return newRepositories(db)
}

func newRepositories(db queryer) *Repositories {
	return &Repositories{
		Countries: newCountryRepository(db),
		Regions:   newRegionRepository(db),
		Cities:    newCityRepository(db),
		Locations: newLocationRepository(db),
	}
}

type Countries interface {
	Create(ctx context.Context, country *domain.Country) error
	GetOneByID(ctx context.Context, id int64) (*domain.Country, error)
	GetAll(ctx context.Context) ([]domain.Country, error)
}

type Regions interface {
	Create(ctx context.Context, region *domain.Region) error
	GetOneByID(ctx context.Context, id int64) (*domain.Region, error)
	GetAllByCountryID(ctx context.Context, countryID int64) ([]domain.Region, error)
}

type Cities interface {
	Create(ctx context.Context, city *domain.City) error
	GetOneByID(ctx context.Context, id int64) (*domain.City, error)
	GetAllByRegionID(ctx context.Context, regionID int64) ([]domain.City, error)
}

type Locations interface {
	Create(ctx context.Context, location *domain.Location) error
	Update(ctx context.Context, location *domain.Location) error
	GetOneByID(ctx context.Context, id int64) (*domain.Location, error)
	GetAll(ctx context.Context) ([]domain.LocationView, error)
}
