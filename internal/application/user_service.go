package application

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/draperhq/storefront-api/internal/domain/apperr"
	"github.com/draperhq/storefront-api/internal/domain/entity"
	repo "github.com/draperhq/storefront-api/internal/domain/repository"
	"github.com/draperhq/storefront-api/pkg/helpers"
	"github.com/draperhq/storefront-api/pkg/mailer"
)

// UserService owns registration, login, profile, and the password-reset
// lifecycle.
type UserService struct {
	Repo          repo.UserRepository
	JWT           *helpers.JWTManager
	Redis         *redis.Client
	GCS           *storage.Client
	GCSBucket     string
	Publisher     NotificationPublisher
	Logger        *logrus.Logger
	ResetURL      string
	ResetTokenTTL time.Duration
	CompanyName   string
	MailEnabled   bool
}

// Session is the issued credential: the signed token plus its expiry.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

func sessionKey(userID string) string {
	return "user:session:" + userID
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Register creates an account. Duplicate emails (case-insensitive) conflict;
// the password is hashed before it is ever persisted.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, Session, error) {
	email := normalizeEmail(in.Email)

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, Session{}, err
	}
	if existing != nil {
		return nil, Session{}, fmt.Errorf("email %s: %w", email, apperr.ErrConflict)
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, Session{}, err
	}

	u := &entity.User{
		Email:     email,
		Password:  hash,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, Session{}, err
	}

	sess, err := s.issueSession(ctx, u)
	if err != nil {
		return nil, Session{}, err
	}
	return u, sess, nil
}

// Login validates credentials. Both "no such user" and "wrong password"
// surface as the same ErrUnauthorized so accounts cannot be enumerated.
func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, Session, error) {
	u, err := s.Repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, Session{}, err
	}
	if u == nil || !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, Session{}, apperr.ErrUnauthorized
	}

	sess, err := s.issueSession(ctx, u)
	if err != nil {
		return nil, Session{}, err
	}
	return u, sess, nil
}

// issueSession signs the capability token and records the session in Redis.
func (s *UserService) issueSession(ctx context.Context, u *entity.User) (Session, error) {
	token, exp, err := s.JWT.Generate(u.ID, u.IsAdmin)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return Session{}, err
	}

	if s.Redis != nil {
		fields := map[string]any{
			"user_id":    u.ID,
			"email":      u.Email,
			"name":       u.FullName(),
			"is_admin":   u.IsAdmin,
			"created_at": time.Now().UTC().Format(time.RFC3339Nano),
		}
		key := sessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, time.Until(exp))
		if _, rErr := pipe.Exec(ctx); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}

	return Session{Token: token, ExpiresAt: exp}, nil
}

// Logout drops the Redis session; the cookie is cleared at the handler.
func (s *UserService) Logout(ctx context.Context, userID string) {
	if s.Redis != nil {
		if err := s.Redis.Del(ctx, sessionKey(userID)).Err(); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("session delete failed")
		}
	}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user: %w", apperr.ErrNotFound)
	}
	return u, nil
}

type UpdateProfileInput struct {
	FirstName string
	LastName  string
	AvatarURL string
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.FirstName != "" {
		u.FirstName = in.FirstName
	}
	if in.LastName != "" {
		u.LastName = in.LastName
	}
	if in.AvatarURL != "" {
		u.AvatarURL = in.AvatarURL
	}
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, err
	}

	if s.Redis != nil {
		key := sessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"name":       u.FullName(),
			"updated_at": time.Now().UTC().Format(time.RFC3339Nano),
		})
		if ttl, tErr := s.Redis.TTL(ctx, key).Result(); tErr == nil && ttl > 0 {
			pipe.Expire(ctx, key, ttl)
		}
		if _, pErr := pipe.Exec(ctx); pErr != nil && s.Logger != nil {
			s.Logger.WithError(pErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}
	return u, nil
}

// UploadAvatar stores the image in GCS and updates the profile with its URL.
func (s *UserService) UploadAvatar(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", fmt.Errorf("object storage not configured: %w", apperr.ErrDependency)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", userID, helpers.NewID()+ext))
	url, err := helpers.UploadImageToGCS(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", fmt.Errorf("avatar upload: %w", apperr.ErrDependency)
	}

	u.AvatarURL = url
	if err := s.Repo.Update(ctx, u); err != nil {
		return "", err
	}
	return url, nil
}

// ForgotPassword issues a single-use reset token: only its hash is stored,
// with a short expiry, and the raw token is emailed as a link. If the email
// cannot be dispatched the stored token is rolled back so no stale reset
// state is left active.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	u, err := s.Repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if u == nil {
		return fmt.Errorf("user: %w", apperr.ErrNotFound)
	}

	raw, hash, err := helpers.NewResetToken()
	if err != nil {
		return err
	}
	exp := time.Now().Add(s.ResetTokenTTL)
	u.ResetTokenHash = &hash
	u.ResetTokenExp = &exp
	if err := s.Repo.Update(ctx, u); err != nil {
		return err
	}

	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailer.TemplateResetPassword,
		Data: map[string]any{
			"Name":      u.FullName(),
			"ResetURL":  s.ResetURL + "/" + raw,
			"ExpiresIn": s.ResetTokenTTL.String(),
			"Company":   s.CompanyName,
		},
	}
	if err := s.publish(ctx, job); err != nil {
		// Compensating rollback: never leave an unusable reset state active.
		u.ClearResetToken()
		if rbErr := s.Repo.Update(ctx, u); rbErr != nil && s.Logger != nil {
			s.Logger.WithError(rbErr).WithField("user_id", u.ID).Error("reset token rollback failed")
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("reset email dispatch failed")
		}
		return fmt.Errorf("reset email: %w", apperr.ErrDependency)
	}
	return nil
}

// ResetPassword consumes a reset token: the stored hash must match and be
// unexpired. The new password goes through the same hashing path as
// registration and the token is cleared, so it cannot be replayed.
func (s *UserService) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	u, err := s.Repo.GetByResetTokenHash(ctx, helpers.HashToken(rawToken))
	if err != nil {
		return err
	}
	if u == nil || !u.HasActiveResetToken(time.Now()) {
		return fmt.Errorf("invalid or expired token: %w", apperr.ErrValidation)
	}

	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return err
	}
	u.Password = hash
	u.ClearResetToken()
	return s.Repo.Update(ctx, u)
}

// ListUsers is the admin directory view.
func (s *UserService) ListUsers(ctx context.Context) ([]entity.User, error) {
	return s.Repo.List(ctx)
}

// DeleteUser removes an account and its session.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.Logout(ctx, id)
	return nil
}

func (s *UserService) publish(ctx context.Context, job mailer.EmailJob) error {
	if !s.MailEnabled {
		return nil
	}
	if s.Publisher == nil {
		return fmt.Errorf("notification publisher not configured")
	}
	return s.Publisher.PublishJSON(ctx, job)
}
