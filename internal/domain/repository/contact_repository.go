package repository

import (
	"context"

	"github.com/draperhq/storefront-api/internal/domain/entity"
)

// ContactRepository defines the interface for contact-form submissions.
type ContactRepository interface {
	Create(ctx context.Context, m *entity.ContactMessage) error
	List(ctx context.Context) ([]entity.ContactMessage, error)
}
