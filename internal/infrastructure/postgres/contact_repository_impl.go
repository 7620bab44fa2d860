package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/draperhq/storefront-api/internal/domain/entity"
	"github.com/draperhq/storefront-api/internal/domain/repository"
)

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) Create(ctx context.Context, m *entity.ContactMessage) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO contact_messages (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, m.Name, m.Email, m.Subject, m.Message)
	return row.Scan(&m.ID, &m.CreatedAt)
}

func (r *ContactRepository) List(ctx context.Context) ([]entity.ContactMessage, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email, subject, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []entity.ContactMessage
	for rows.Next() {
		m := entity.ContactMessage{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

var _ repository.ContactRepository = (*ContactRepository)(nil)
