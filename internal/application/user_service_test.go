package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draperhq/storefront-api/internal/domain/apperr"
	"github.com/draperhq/storefront-api/pkg/helpers"
	"github.com/draperhq/storefront-api/pkg/mailer"
)

func newUserFixture() (*UserService, *memUsers, *capturePublisher) {
	users := newMemUsers()
	pub := &capturePublisher{}
	svc := &UserService{
		Repo:          users,
		JWT:           helpers.NewJWTManager("test-secret", time.Hour),
		Publisher:     pub,
		ResetURL:      "https://draperhome.test/reset-password",
		ResetTokenTTL: 10 * time.Minute,
		CompanyName:   "Draper Home",
		MailEnabled:   true,
	}
	return svc, users, pub
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, _ := newUserFixture()
	ctx := context.Background()

	u, sess, err := svc.Register(ctx, RegisterInput{
		Email:     "Ada@Example.com",
		Password:  "hunter2hunter2",
		FirstName: "Ada",
		LastName:  "Draper",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", u.Email, "emails are normalized")
	assert.NotEmpty(t, sess.Token)
	assert.True(t, sess.ExpiresAt.After(time.Now()))

	got, sess2, err := svc.Login(ctx, "ada@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.NotEmpty(t, sess2.Token)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc, _, _ := newUserFixture()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterInput{Email: "ada@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, RegisterInput{Email: "ADA@example.com", Password: "different-pass"})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	svc, _, _ := newUserFixture()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterInput{Email: "ada@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)

	_, _, unknownErr := svc.Login(ctx, "nobody@example.com", "whatever1")
	_, _, wrongErr := svc.Login(ctx, "ada@example.com", "wrong-password")

	assert.ErrorIs(t, unknownErr, apperr.ErrUnauthorized)
	assert.ErrorIs(t, wrongErr, apperr.ErrUnauthorized)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error(), "no account enumeration via error text")
}

func TestPasswordNeverStoredInPlainText(t *testing.T) {
	svc, users, _ := newUserFixture()
	ctx := context.Background()

	u, _, err := svc.Register(ctx, RegisterInput{Email: "ada@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)

	stored := users.byID[u.ID]
	assert.NotEqual(t, "hunter2hunter2", stored.Password)
	assert.True(t, helpers.CompareHashAndPassword(stored.Password, "hunter2hunter2"))
}

func TestForgotPasswordStoresHashAndEmailsRawToken(t *testing.T) {
	svc, users, pub := newUserFixture()
	ctx := context.Background()

	u, _, err := svc.Register(ctx, RegisterInput{Email: "ada@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)

	require.NoError(t, svc.ForgotPassword(ctx, "ada@example.com"))

	stored := users.byID[u.ID]
	require.NotNil(t, stored.ResetTokenHash)
	require.NotNil(t, stored.ResetTokenExp)

	require.Len(t, pub.jobs, 1)
	job, ok := pub.jobs[0].(mailer.EmailJob)
	require.True(t, ok)
	assert.Equal(t, mailer.TemplateResetPassword, job.Template)
	url, _ := job.Data["ResetURL"].(string)
	assert.Contains(t, url, svc.ResetURL+"/")
	assert.NotContains(t, url, *stored.ResetTokenHash, "only the hash is persisted, never mailed")
}

func TestForgotPasswordRollsBackOnDispatchFailure(t *testing.T) {
	svc, users, pub := newUserFixture()
	pub.err = errors.New("broker down")
	ctx := context.Background()

	u, _, err := svc.Register(ctx, RegisterInput{Email: "ada@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)

	err = svc.ForgotPassword(ctx, "ada@example.com")
	assert.ErrorIs(t, err, apperr.ErrDependency)

	stored := users.byID[u.ID]
	assert.Nil(t, stored.ResetTokenHash, "failed dispatch must not leave an active token")
	assert.Nil(t, stored.ResetTokenExp)
}

func TestResetPasswordConsumesToken(t *testing.T) {
	svc, users, pub := newUserFixture()
	ctx := context.Background()

	u, _, err := svc.Register(ctx, RegisterInput{Email: "ada@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)
	require.NoError(t, svc.ForgotPassword(ctx, "ada@example.com"))

	job := pub.jobs[0].(mailer.EmailJob)
	url := job.Data["ResetURL"].(string)
	raw := url[len(svc.ResetURL)+1:]

	require.NoError(t, svc.ResetPassword(ctx, raw, "brand-new-password"))

	stored := users.byID[u.ID]
	assert.True(t, helpers.CompareHashAndPassword(stored.Password, "brand-new-password"))
	assert.Nil(t, stored.ResetTokenHash)

	// Second use of the same token must fail.
	err = svc.ResetPassword(ctx, raw, "yet-another-pass")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestResetPasswordRejectsExpiredToken(t *testing.T) {
	svc, users, pub := newUserFixture()
	ctx := context.Background()

	u, _, err := svc.Register(ctx, RegisterInput{Email: "ada@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)
	require.NoError(t, svc.ForgotPassword(ctx, "ada@example.com"))

	past := time.Now().Add(-time.Minute)
	users.byID[u.ID].ResetTokenExp = &past

	job := pub.jobs[0].(mailer.EmailJob)
	url := job.Data["ResetURL"].(string)
	raw := url[len(svc.ResetURL)+1:]

	err = svc.ResetPassword(ctx, raw, "brand-new-password")
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.False(t, helpers.CompareHashAndPassword(users.byID[u.ID].Password, "brand-new-password"))
}

func TestResetPasswordRejectsBogusToken(t *testing.T) {
	svc, _, _ := newUserFixture()
	err := svc.ResetPassword(context.Background(), "never-issued", "whatever-pass")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestUpdateProfilePartialFields(t *testing.T) {
	svc, _, _ := newUserFixture()
	ctx := context.Background()

	u, _, err := svc.Register(ctx, RegisterInput{
		Email: "ada@example.com", Password: "hunter2hunter2", FirstName: "Ada", LastName: "Draper",
	})
	require.NoError(t, err)

	got, err := svc.UpdateProfile(ctx, u.ID, UpdateProfileInput{LastName: "Lovelace"})
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.FirstName, "unset fields keep their value")
	assert.Equal(t, "Lovelace", got.LastName)
}

func TestDeleteUserRemovesAccount(t *testing.T) {
	svc, users, _ := newUserFixture()
	ctx := context.Background()

	u, _, err := svc.Register(ctx, RegisterInput{Email: "ada@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, u.ID))
	_, ok := users.byID[u.ID]
	assert.False(t, ok)

	_, err = svc.GetProfile(ctx, u.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
