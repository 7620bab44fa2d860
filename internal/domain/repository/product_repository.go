package repository

import (
	"context"

	"github.com/draperhq/storefront-api/internal/domain/entity"
)

// ProductRepository defines the interface for catalog persistence.
// GetByID returns (nil, nil) when no product matches.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// List returns all products, or only one catalog section when category
	// is non-empty.
	List(ctx context.Context, category string) ([]entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, id string) error
}
