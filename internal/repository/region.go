package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cascade-admin/locations/internal/domain"
)

type regionRepository struct {
	db queryer
}

func newRegionRepository(db queryer) *regionRepository {
	return &regionRepository{
		db: db,
	}
}

func (r *regionRepository) Create(ctx context.Context, region *domain.Region) error {
	const query = `
	INSERT INTO region (country_id, name) VALUES (?, ?);
	`
	result, err := r.db.ExecContext(ctx, query, region.CountryID, region.Name)
	if err != nil {
		return fmt.Errorf("db insert region: %w", mapWriteError(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("region last insert id: %w", err)
	}
	region.ID = id

	return nil
}

func (r *regionRepository) GetOneByID(ctx context.Context, id int64) (*domain.Region, error) {
	const query = `
	SELECT id, country_id, name FROM region WHERE id = ?;
	`
	var region domain.Region
	if err := r.db.GetContext(ctx, &region, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from region by id failed: %w", err)
	}
	return &region, nil
}

// GetAllByCountryID returns the regions of a country in insertion order.
func (r *regionRepository) GetAllByCountryID(ctx context.Context, countryID int64) ([]domain.Region, error) {
	const query = `
	SELECT id, country_id, name FROM region WHERE country_id = ? ORDER BY id ASC;
	`
	regions := []domain.Region{}
	if err := r.db.SelectContext(ctx, &regions, query, countryID); err != nil {
		return nil, fmt.Errorf("select from region by country failed: %w", err)
	}
	return regions, nil
}
