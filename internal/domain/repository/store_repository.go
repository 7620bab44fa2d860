package repository

import (
	"context"

	"github.com/draperhq/storefront-api/internal/domain/entity"
)

// StoreRepository defines the interface for the store locator.
type StoreRepository interface {
	Create(ctx context.Context, s *entity.Store) error
	GetByID(ctx context.Context, id string) (*entity.Store, error)
	List(ctx context.Context) ([]entity.Store, error)
	Update(ctx context.Context, s *entity.Store) error
	Delete(ctx context.Context, id string) error
}
