package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cascade-admin/locations/internal/domain"
)

type locationRepository struct {
	db queryer
}

func newLocationRepository(db queryer) *locationRepository {
	return &locationRepository{
		db: db,
	}
}

func (r *locationRepository) Create(ctx context.Context, location *domain.Location) error {
	const query = `
	INSERT INTO location (city_id) VALUES (?);
	`
	result, err := r.db.ExecContext(ctx, query, location.CityID)
	if err != nil {
		return fmt.Errorf("db insert location: %w", mapWriteError(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("location last insert id: %w", err)
	}
	location.ID = id

	return nil
}

// Update rewrites the city reference. MySQL reports zero affected rows when
// the value is unchanged, so existence is the caller's concern.
func (r *locationRepository) Update(ctx context.Context, location *domain.Location) error {
	const query = `
	UPDATE location SET city_id = ? WHERE id = ?;
	`
	if _, err := r.db.ExecContext(ctx, query, location.CityID, location.ID); err != nil {
		return fmt.Errorf("db update location: %w", mapWriteError(err))
	}
	return nil
}

func (r *locationRepository) GetOneByID(ctx context.Context, id int64) (*domain.Location, error) {
	const query = `
	SELECT id, city_id FROM location WHERE id = ?;
	`
	var location domain.Location
	if err := r.db.GetContext(ctx, &location, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from location by id failed: %w", err)
	}
	return &location, nil
}

func (r *locationRepository) GetAll(ctx context.Context) ([]domain.LocationView, error) {
	const query = `
	SELECT
		l.id,
		co.name AS country_name,
		r.name AS region_name,
		ci.name AS city_name
	FROM location l
	INNER JOIN city ci ON ci.id = l.city_id
	INNER JOIN region r ON r.id = ci.region_id
	INNER JOIN country co ON co.id = r.country_id
	ORDER BY l.id ASC;
	`
	locations := []domain.LocationView{}
	if err := r.db.SelectContext(ctx, &locations, query); err != nil {
		return nil, fmt.Errorf("select from location failed: %w", err)
	}
	return locations, nil
}
