package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draperhq/storefront-api/pkg/mailer"
)

func TestContactSubmitPersistsAndSendsReceipt(t *testing.T) {
	repo := &memContacts{}
	pub := &capturePublisher{}
	svc := &ContactService{Repo: repo, Publisher: pub, CompanyName: "Draper Home", MailEnabled: true}

	msg, err := svc.Submit(context.Background(), ContactInput{
		Name:    "Ada Draper",
		Email:   "ada@example.com",
		Subject: "Measuring service",
		Message: "Do you measure windows at home before ordering?",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)

	stored, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Measuring service", stored[0].Subject)

	require.Len(t, pub.jobs, 1)
	job := pub.jobs[0].(mailer.EmailJob)
	assert.Equal(t, mailer.TemplateContactReceipt, job.Template)
	assert.Equal(t, "ada@example.com", job.To)
}

func TestContactSubmitSurvivesReceiptFailure(t *testing.T) {
	repo := &memContacts{}
	pub := &capturePublisher{err: errors.New("broker down")}
	svc := &ContactService{Repo: repo, Publisher: pub, MailEnabled: true}

	_, err := svc.Submit(context.Background(), ContactInput{
		Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "A question about blinds.",
	})
	require.NoError(t, err, "the receipt is best-effort")
	assert.Len(t, repo.msgs, 1)
}
