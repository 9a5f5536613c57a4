package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/cascade-admin/locations/internal/domain"
	"github.com/cascade-admin/locations/internal/repository"
)

type lookupService struct {
	countryRepository repository.Countries
	regionRepository  repository.Regions
	cascade           Cascade
}

func newLookupService(countryRepository repository.Countries, regionRepository repository.Regions, cascade Cascade) *lookupService {
	return &lookupService{
		countryRepository: countryRepository,
		regionRepository:  regionRepository,
		cascade:           cascade,
	}
}

func (s *lookupService) RegionsForCountry(ctx context.Context, countryID int64) ([]domain.Option, error) {
	country, err := s.countryRepository.GetOneByID(ctx, countryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrCountryNotFound
		}
		return nil, fmt.Errorf("get country %d: %w", countryID, err)
	}

	return s.cascade.OptionsForRegion(ctx, country)
}

func (s *lookupService) CitiesForRegion(ctx context.Context, regionID int64) ([]domain.Option, error) {
	region, err := s.regionRepository.GetOneByID(ctx, regionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrRegionNotFound
		}
		return nil, fmt.Errorf("get region %d: %w", regionID, err)
	}

	return s.cascade.OptionsForCity(ctx, region)
}
