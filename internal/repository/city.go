package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cascade-admin/locations/internal/domain"
)

type cityRepository struct {
	db queryer
}

func newCityRepository(db queryer) *cityRepository {
	return &cityRepository{
		db: db,
	}
}

func (r *cityRepository) Create(ctx context.Context, city *domain.City) error {
	const query = `
	INSERT INTO city (region_id, name) VALUES (?, ?);
	`
	result, err := r.db.ExecContext(ctx, query, city.RegionID, city.Name)
	if err != nil {
		return fmt.Errorf("db insert city: %w", mapWriteError(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("city last insert id: %w", err)
	}
	city.ID = id

	return nil
}

func (r *cityRepository) GetOneByID(ctx context.Context, id int64) (*domain.City, error) {
	const query = `
	SELECT id, region_id, name FROM city WHERE id = ?;
	`
	var city domain.City
	if err := r.db.GetContext(ctx, &city, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from city by id failed: %w", err)
	}
	return &city, nil
}

// GetAllByRegionID returns the cities of a region in insertion order.
func (r *cityRepository) GetAllByRegionID(ctx context.Context, regionID int64) ([]domain.City, error) {
	const query = `
	SELECT id, region_id, name FROM city WHERE region_id = ? ORDER BY id ASC;
	`
	cities := []domain.City{}
	if err := r.db.SelectContext(ctx, &cities, query, regionID); err != nil {
		return nil, fmt.Errorf("select from city by region failed: %w", err)
	}
	return cities, nil
}
