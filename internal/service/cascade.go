package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cascade-admin/locations/internal/cache"
	"github.com/cascade-admin/locations/internal/domain"
	"github.com/cascade-admin/locations/internal/repository"
	"github.com/cascade-admin/locations/pkg/logger"
)

// Hierarchy is a resolved country, region and city. Fields are nil when
// nothing was resolved; when City is set all three are set and consistent.
type Hierarchy struct {
	Country *domain.Country
	Region  *domain.Region
	City    *domain.City
}

type cascadeResolver struct {
	countryRepository repository.Countries
	regionRepository  repository.Regions
	cityRepository    repository.Cities
	cache             cache.OptionCache
}

func newCascadeResolver(
	countryRepository repository.Countries,
	regionRepository repository.Regions,
	cityRepository repository.Cities,
	optionCache cache.OptionCache,
) *cascadeResolver {
	return &cascadeResolver{
		countryRepository: countryRepository,
		regionRepository:  regionRepository,
		cityRepository:    cityRepository,
		cache:             optionCache,
	}
}

// ResolveFromCity walks city → region → country. A nil id resolves to an
// empty Hierarchy; an unknown city is ErrCityNotFound.
func (r *cascadeResolver) ResolveFromCity(ctx context.Context, cityID *int64) (Hierarchy, error) {
	if cityID == nil {
		return Hierarchy{}, nil
	}

	city, err := r.cityRepository.GetOneByID(ctx, *cityID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Hierarchy{}, ErrCityNotFound
		}
		return Hierarchy{}, fmt.Errorf("get city %d: %w", *cityID, err)
	}

	region, err := r.regionRepository.GetOneByID(ctx, city.RegionID)
	if err != nil {
		return Hierarchy{}, fmt.Errorf("get region %d of city %d: %w", city.RegionID, city.ID, err)
	}

	country, err := r.countryRepository.GetOneByID(ctx, region.CountryID)
	if err != nil {
		return Hierarchy{}, fmt.Errorf("get country %d of region %d: %w", region.CountryID, region.ID, err)
	}

	return Hierarchy{Country: country, Region: region, City: city}, nil
}

// ResolveFromSubmission looks up the submitted country and region
// independently. Missing or unknown ids resolve to nil without an error, and
// the region is not checked against the country.
func (r *cascadeResolver) ResolveFromSubmission(ctx context.Context, countryID, regionID *int64) (*domain.Country, *domain.Region, error) {
	country, err := findOptional(ctx, countryID, r.countryRepository.GetOneByID)
	if err != nil {
		return nil, nil, fmt.Errorf("get submitted country: %w", err)
	}

	region, err := findOptional(ctx, regionID, r.regionRepository.GetOneByID)
	if err != nil {
		return nil, nil, fmt.Errorf("get submitted region: %w", err)
	}

	return country, region, nil
}

func (r *cascadeResolver) OptionsForCountry(ctx context.Context) ([]domain.Option, error) {
	return r.cachedOptions(ctx, cache.CountriesKey(), func() ([]domain.Option, error) {
		countries, err := r.countryRepository.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		options := make([]domain.Option, len(countries))
		for i := range countries {
			options[i] = countries[i].Option()
		}
		return options, nil
	})
}

// OptionsForRegion lists the regions of country in store order. A nil
// country has no regions.
func (r *cascadeResolver) OptionsForRegion(ctx context.Context, country *domain.Country) ([]domain.Option, error) {
	if country == nil {
		return []domain.Option{}, nil
	}

	return r.cachedOptions(ctx, cache.RegionsKey(country.ID), func() ([]domain.Option, error) {
		regions, err := r.regionRepository.GetAllByCountryID(ctx, country.ID)
		if err != nil {
			return nil, err
		}
		options := make([]domain.Option, len(regions))
		for i := range regions {
			options[i] = regions[i].Option()
		}
		return options, nil
	})
}

// OptionsForCity lists the cities of region in store order. A nil region has
// no cities.
func (r *cascadeResolver) OptionsForCity(ctx context.Context, region *domain.Region) ([]domain.Option, error) {
	if region == nil {
		return []domain.Option{}, nil
	}

	return r.cachedOptions(ctx, cache.CitiesKey(region.ID), func() ([]domain.Option, error) {
		cities, err := r.cityRepository.GetAllByRegionID(ctx, region.ID)
		if err != nil {
			return nil, err
		}
		options := make([]domain.Option, len(cities))
		for i := range cities {
			options[i] = cities[i].Option()
		}
		return options, nil
	})
}

// cachedOptions reads through the option cache. Cache failures are logged and
// the store answers instead.
func (r *cascadeResolver) cachedOptions(ctx context.Context, key string, load func() ([]domain.Option, error)) ([]domain.Option, error) {
	options, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		logger.Warn("option cache get failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		return options, nil
	}

	options, err = load()
	if err != nil {
		return nil, fmt.Errorf("load options %s: %w", key, err)
	}

	if err := r.cache.Set(ctx, key, options); err != nil {
		logger.Warn("option cache set failed", zap.String("key", key), zap.Error(err))
	}

	return options, nil
}

func findOptional[T any](ctx context.Context, id *int64, find func(context.Context, int64) (*T, error)) (*T, error) {
	if id == nil {
		return nil, nil
	}

	entity, err := find(ctx, *id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return entity, nil
}
