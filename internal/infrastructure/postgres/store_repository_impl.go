package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/draperhq/storefront-api/internal/domain/apperr"
	"github.com/draperhq/storefront-api/internal/domain/entity"
	"github.com/draperhq/storefront-api/internal/domain/repository"
)

type StoreRepository struct {
	pool *pgxpool.Pool
}

func NewStoreRepository(pool *pgxpool.Pool) *StoreRepository {
	return &StoreRepository{pool: pool}
}

const storeColumns = `id, name, street, city, country, phone, latitude, longitude, opening_hours, created_at, updated_at`

func (r *StoreRepository) Create(ctx context.Context, s *entity.Store) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO stores (name, street, city, country, phone, latitude, longitude, opening_hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, s.Name, s.Street, s.City, s.Country, s.Phone, s.Latitude, s.Longitude, s.OpeningHours)
	return row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *StoreRepository) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	s := &entity.Store{}
	row := r.pool.QueryRow(ctx, `SELECT `+storeColumns+` FROM stores WHERE id = $1`, id)
	if err := row.Scan(&s.ID, &s.Name, &s.Street, &s.City, &s.Country, &s.Phone,
		&s.Latitude, &s.Longitude, &s.OpeningHours, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

func (r *StoreRepository) List(ctx context.Context) ([]entity.Store, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+storeColumns+` FROM stores ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stores []entity.Store
	for rows.Next() {
		s := entity.Store{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Street, &s.City, &s.Country, &s.Phone,
			&s.Latitude, &s.Longitude, &s.OpeningHours, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

func (r *StoreRepository) Update(ctx context.Context, s *entity.Store) error {
	s.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE stores
		SET name = $1, street = $2, city = $3, country = $4, phone = $5,
		    latitude = $6, longitude = $7, opening_hours = $8, updated_at = $9
		WHERE id = $10
	`, s.Name, s.Street, s.City, s.Country, s.Phone, s.Latitude, s.Longitude,
		s.OpeningHours, s.UpdatedAt, s.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *StoreRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

var _ repository.StoreRepository = (*StoreRepository)(nil)
