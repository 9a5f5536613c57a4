package service

import (
	"context"
	"sync"

	"github.com/cascade-admin/locations/internal/domain"
	"github.com/cascade-admin/locations/internal/repository"
)

const (
	countryFrance  = 1
	countryGermany = 2

	regionIDF     = 1
	regionHDF     = 2
	regionBavaria = 5

	cityParis  = 1
	cityLille  = 4
	cityMunich = 8
)

type memStore struct {
	mu        sync.Mutex
	countries []domain.Country
	regions   []domain.Region
	cities    []domain.City
	locations []domain.Location
	calls     map[string]int
	err       error
}

func newMemStore() *memStore {
	return &memStore{
		countries: []domain.Country{
			{ID: 1, Name: "France"},
			{ID: 2, Name: "Germany"},
		},
		regions: []domain.Region{
			{ID: 1, CountryID: 1, Name: "Île-de-France"},
			{ID: 2, CountryID: 1, Name: "Hauts-de-France"},
			{ID: 3, CountryID: 1, Name: "Normandie"},
			{ID: 4, CountryID: 2, Name: "Baden-Württemberg"},
			{ID: 5, CountryID: 2, Name: "Bavaria"},
		},
		cities: []domain.City{
			{ID: 1, RegionID: 1, Name: "Paris"},
			{ID: 2, RegionID: 1, Name: "Chaville"},
			{ID: 3, RegionID: 1, Name: "Sèvres"},
			{ID: 4, RegionID: 2, Name: "Lille"},
			{ID: 5, RegionID: 2, Name: "Amiens"},
			{ID: 6, RegionID: 3, Name: "Caen"},
			{ID: 7, RegionID: 4, Name: "Stuttgart"},
			{ID: 8, RegionID: 5, Name: "Munich"},
			{ID: 9, RegionID: 5, Name: "Nürnberg"},
			{ID: 10, RegionID: 5, Name: "Augsburg"},
		},
		calls: make(map[string]int),
	}
}

func (s *memStore) repositories() *repository.Repositories {
	return &repository.Repositories{
		Countries: memCountries{s},
		Regions:   memRegions{s},
		Cities:    memCities{s},
		Locations: memLocations{s},
	}
}

func (s *memStore) track(call string) error {
	s.calls[call]++
	return s.err
}

func (s *memStore) callCount(call string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[call]
}

type memCountries struct{ s *memStore }

func (r memCountries) Create(_ context.Context, country *domain.Country) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	country.ID = int64(len(r.s.countries) + 1)
	r.s.countries = append(r.s.countries, *country)
	return nil
}

func (r memCountries) GetOneByID(_ context.Context, id int64) (*domain.Country, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.track("countries.GetOneByID"); err != nil {
		return nil, err
	}
	for _, c := range r.s.countries {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r memCountries) GetAll(_ context.Context) ([]domain.Country, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.track("countries.GetAll"); err != nil {
		return nil, err
	}
	return append([]domain.Country{}, r.s.countries...), nil
}

type memRegions struct{ s *memStore }

func (r memRegions) Create(_ context.Context, region *domain.Region) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	region.ID = int64(len(r.s.regions) + 1)
	r.s.regions = append(r.s.regions, *region)
	return nil
}

func (r memRegions) GetOneByID(_ context.Context, id int64) (*domain.Region, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.track("regions.GetOneByID"); err != nil {
		return nil, err
	}
	for _, region := range r.s.regions {
		if region.ID == id {
			return &region, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r memRegions) GetAllByCountryID(_ context.Context, countryID int64) ([]domain.Region, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.track("regions.GetAllByCountryID"); err != nil {
		return nil, err
	}
	regions := []domain.Region{}
	for _, region := range r.s.regions {
		if region.CountryID == countryID {
			regions = append(regions, region)
		}
	}
	return regions, nil
}

type memCities struct{ s *memStore }

func (r memCities) Create(_ context.Context, city *domain.City) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	city.ID = int64(len(r.s.cities) + 1)
	r.s.cities = append(r.s.cities, *city)
	return nil
}

func (r memCities) GetOneByID(_ context.Context, id int64) (*domain.City, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.track("cities.GetOneByID"); err != nil {
		return nil, err
	}
	for _, city := range r.s.cities {
		if city.ID == id {
			return &city, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r memCities) GetAllByRegionID(_ context.Context, regionID int64) ([]domain.City, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.track("cities.GetAllByRegionID"); err != nil {
		return nil, err
	}
	cities := []domain.City{}
	for _, city := range r.s.cities {
		if city.RegionID == regionID {
			cities = append(cities, city)
		}
	}
	return cities, nil
}

type memLocations struct{ s *memStore }

func (r memLocations) Create(_ context.Context, location *domain.Location) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.track("locations.Create"); err != nil {
		return err
	}
	location.ID = int64(len(r.s.locations) + 1)
	r.s.locations = append(r.s.locations, *location)
	return nil
}

func (r memLocations) Update(_ context.Context, location *domain.Location) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.track("locations.Update"); err != nil {
		return err
	}
	for i := range r.s.locations {
		if r.s.locations[i].ID == location.ID {
			r.s.locations[i] = *location
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r memLocations) GetOneByID(_ context.Context, id int64) (*domain.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, l := range r.s.locations {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r memLocations) GetAll(_ context.Context) ([]domain.LocationView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	views := []domain.LocationView{}
	for _, l := range r.s.locations {
		view := domain.LocationView{ID: l.ID}
		for _, city := range r.s.cities {
			if city.ID != l.CityID {
				continue
			}
			view.CityName = city.Name
			for _, region := range r.s.regions {
				if region.ID != city.RegionID {
					continue
				}
				view.RegionName = region.Name
				for _, country := range r.s.countries {
					if country.ID == region.CountryID {
						view.CountryName = country.Name
					}
				}
			}
		}
		views = append(views, view)
	}
	return views, nil
}

type memCache struct {
	mu    sync.Mutex
	items map[string][]domain.Option
	err   error
}

func newMemCache() *memCache {
	return &memCache{items: make(map[string][]domain.Option)}
}

func (c *memCache) Get(_ context.Context, key string) ([]domain.Option, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, false, c.err
	}
	options, ok := c.items[key]
	return options, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, options []domain.Option) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.items[key] = options
	return nil
}
