package service

import (
	"context"

	"github.com/cascade-admin/locations/internal/cache"
	"github.com/cascade-admin/locations/internal/domain"
	"github.com/cascade-admin/locations/internal/repository"
)

type Services struct {
	Cascade   Cascade
	Forms     Forms
	Lookup    Lookup
	Locations Locations
}

type Deps struct {
	Repos *repository.Repositories
	Cache cache.OptionCache
}

func NewServices(deps Deps) *Services {
	optionCache := deps.Cache
	if optionCache == nil {
		optionCache = cache.Noop{}
	}

	cascade := newCascadeResolver(deps.Repos.Countries, deps.Repos.Regions, deps.Repos.Cities, optionCache)
	forms := newFormService(cascade)

	return &Services{
		Cascade:   cascade,
		Forms:     forms,
		Lookup:    newLookupService(deps.Repos.Countries, deps.Repos.Regions, cascade),
		Locations: newLocationService(deps.Repos.Locations, forms),
	}
}

// Cascade resolves the country → region → city chain and the option lists
// each level allows.
type Cascade interface {
	ResolveFromCity(ctx context.Context, cityID *int64) (Hierarchy, error)
	ResolveFromSubmission(ctx context.Context, countryID, regionID *int64) (*domain.Country, *domain.Region, error)
	OptionsForCountry(ctx context.Context) ([]domain.Option, error)
	OptionsForRegion(ctx context.Context, country *domain.Country) ([]domain.Option, error)
	OptionsForCity(ctx context.Context, region *domain.Region) ([]domain.Option, error)
}

// Forms builds the location form for display and for a submission.
type Forms interface {
	Populate(ctx context.Context, location *domain.Location) (*LocationForm, error)
	Resolve(ctx context.Context, location *domain.Location, submission Submission) (*LocationForm, error)
}

type Lookup interface {
	RegionsForCountry(ctx context.Context, countryID int64) ([]domain.Option, error)
	CitiesForRegion(ctx context.Context, regionID int64) ([]domain.Option, error)
}

type Locations interface {
	List(ctx context.Context) ([]domain.LocationView, error)
	GetByID(ctx context.Context, id int64) (*domain.Location, error)
	NewForm(ctx context.Context) (*LocationForm, error)
	EditForm(ctx context.Context, id int64) (*LocationForm, error)
	Create(ctx context.Context, submission Submission) (*LocationForm, *domain.Location, error)
	Update(ctx context.Context, id int64, submission Submission) (*LocationForm, *domain.Location, error)
}
