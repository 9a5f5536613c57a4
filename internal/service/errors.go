package service

import (
	"fmt"

	"github.com/cascade-admin/locations/internal/domain"
)

// All of these match domain.ErrNotFound with errors.Is.
var (
	ErrCountryNotFound  = fmt.Errorf("country %w", domain.ErrNotFound)
	ErrRegionNotFound   = fmt.Errorf("region %w", domain.ErrNotFound)
	ErrCityNotFound     = fmt.Errorf("city %w", domain.ErrNotFound)
	ErrLocationNotFound = fmt.Errorf("location %w", domain.ErrNotFound)
)
