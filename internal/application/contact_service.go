package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/draperhq/storefront-api/internal/domain/entity"
	repo "github.com/draperhq/storefront-api/internal/domain/repository"
	"github.com/draperhq/storefront-api/pkg/mailer"
)

// ContactService persists contact-form submissions and sends the receipt
// email; the receipt is best-effort and never fails the submission.
type ContactService struct {
	Repo        repo.ContactRepository
	Publisher   NotificationPublisher
	Logger      *logrus.Logger
	CompanyName string
	MailEnabled bool
}

type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

func (s *ContactService) Submit(ctx context.Context, in ContactInput) (*entity.ContactMessage, error) {
	m := &entity.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}
	if err := s.Repo.Create(ctx, m); err != nil {
		return nil, err
	}

	if s.MailEnabled && s.Publisher != nil {
		job := mailer.EmailJob{
			To:       m.Email,
			Template: mailer.TemplateContactReceipt,
			Data: map[string]any{
				"Name":    m.Name,
				"Subject": m.Subject,
				"Company": s.CompanyName,
			},
		}
		if err := s.Publisher.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("message_id", m.ID).Warn("failed to enqueue contact receipt")
		}
	}
	return m, nil
}

// List is the admin inbox view.
func (s *ContactService) List(ctx context.Context) ([]entity.ContactMessage, error) {
	return s.Repo.List(ctx)
}
