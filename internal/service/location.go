package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/cascade-admin/locations/internal/domain"
	"github.com/cascade-admin/locations/internal/repository"
	"github.com/cascade-admin/locations/pkg/validator"
)

type locationService struct {
	locationRepository repository.Locations
	forms              Forms
}

func newLocationService(locationRepository repository.Locations, forms Forms) *locationService {
	return &locationService{
		locationRepository: locationRepository,
		forms:              forms,
	}
}

func (s *locationService) List(ctx context.Context) ([]domain.LocationView, error) {
	return s.locationRepository.GetAll(ctx)
}

func (s *locationService) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	location, err := s.locationRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}
	return location, nil
}

func (s *locationService) NewForm(ctx context.Context) (*LocationForm, error) {
	return s.forms.Populate(ctx, &domain.Location{})
}

func (s *locationService) EditForm(ctx context.Context, id int64) (*LocationForm, error) {
	location, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.forms.Populate(ctx, location)
}

// Create persists a new location when the submission is valid. The form is
// always returned so an invalid submission can be shown again.
func (s *locationService) Create(ctx context.Context, submission Submission) (*LocationForm, *domain.Location, error) {
	location := &domain.Location{}

	form, err := s.forms.Resolve(ctx, location, submission)
	if err != nil {
		return nil, nil, err
	}
	if !form.Valid() {
		return form, nil, nil
	}

	if err := validator.Struct(location); err != nil {
		return nil, nil, fmt.Errorf("invalid location: %w", err)
	}

	if err := s.locationRepository.Create(ctx, location); err != nil {
		return nil, nil, err
	}

	return form, location, nil
}

func (s *locationService) Update(ctx context.Context, id int64, submission Submission) (*LocationForm, *domain.Location, error) {
	location, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	form, err := s.forms.Resolve(ctx, location, submission)
	if err != nil {
		return nil, nil, err
	}
	if !form.Valid() {
		return form, nil, nil
	}

	if err := validator.Struct(location); err != nil {
		return nil, nil, fmt.Errorf("invalid location: %w", err)
	}

	if err := s.locationRepository.Update(ctx, location); err != nil {
		return nil, nil, err
	}

	return form, location, nil
}
