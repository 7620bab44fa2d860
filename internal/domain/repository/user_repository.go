package repository

import (
	"context"

	"github.com/draperhq/storefront-api/internal/domain/entity"
)

// UserRepository defines the interface for account persistence.
// GetBy* methods return (nil, nil) when no row matches.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByResetTokenHash(ctx context.Context, hash string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	List(ctx context.Context) ([]entity.User, error)
	Delete(ctx context.Context, id string) error
}
