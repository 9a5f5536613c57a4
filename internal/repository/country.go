package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cascade-admin/locations/internal/domain"
)

type countryRepository struct {
	db queryer
}

func newCountryRepository(db queryer) *countryRepository {
	return &countryRepository{
		db: db,
	}
}

func (r *countryRepository) Create(ctx context.Context, country *domain.Country) error {
	const query = `
	INSERT INTO country (name) VALUES (?);
	`
	result, err := r.db.ExecContext(ctx, query, country.Name)
	if err != nil {
		return fmt.Errorf("db insert country: %w", mapWriteError(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("country last insert id: %w", err)
	}
	country.ID = id

	return nil
}

func (r *countryRepository) GetOneByID(ctx context.Context, id int64) (*domain.Country, error) {
	const query = `
	SELECT id, name FROM country WHERE id = ?;
	`
	var country domain.Country
	if err := r.db.GetContext(ctx, &country, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from country by id failed: %w", err)
	}
	return &country, nil
}

func (r *countryRepository) GetAll(ctx context.Context) ([]domain.Country, error) {
	const query = `
	SELECT id, name FROM country ORDER BY id ASC;
	`
	countries := []domain.Country{}
	if err := r.db.SelectContext(ctx, &countries, query); err != nil {
		return nil, fmt.Errorf("select from country failed: %w", err)
	}
	return countries, nil
}
