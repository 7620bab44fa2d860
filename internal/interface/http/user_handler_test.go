package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draperhq/storefront-api/internal/application"
	"github.com/draperhq/storefront-api/internal/domain/entity"
	"github.com/draperhq/storefront-api/pkg/helpers"
	"github.com/draperhq/storefront-api/pkg/validation"
)

// stubUserRepo serves a single canned user, or fails every call with err.
type stubUserRepo struct {
	user *entity.User
	err  error
}

func (r *stubUserRepo) Create(ctx context.Context, u *entity.User) error { return r.err }
func (r *stubUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.user, r.err
}
func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.user, r.err
}
func (r *stubUserRepo) GetByResetTokenHash(ctx context.Context, hash string) (*entity.User, error) {
	return r.user, r.err
}
func (r *stubUserRepo) Update(ctx context.Context, u *entity.User) error { return r.err }
func (r *stubUserRepo) List(ctx context.Context) ([]entity.User, error) { return nil, r.err }
func (r *stubUserRepo) Delete(ctx context.Context, id string) error     { return r.err }

func postLogin(t *testing.T, repo *stubUserRepo, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	svc := &application.UserService{
		Repo: repo,
		JWT:  helpers.NewJWTManager("test-secret", time.Hour),
	}
	h := NewUserHandler(svc, nil, "", false)

	engine := gin.New()
	engine.POST("/api/users/login", h.Login)

	req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func loginBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestLoginBadCredentialsStayUniform(t *testing.T) {
	hash, err := helpers.HashPassword("right-password")
	require.NoError(t, err)
	repo := &stubUserRepo{user: &entity.User{ID: "u1", Email: "a@b.test", Password: hash}}

	rec := postLogin(t, repo, `{"email":"a@b.test","password":"wrong-password"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", loginBody(t, rec)["message"])
}

func TestLoginRepositoryOutageIsNotUnauthorized(t *testing.T) {
	repo := &stubUserRepo{err: errors.New("connection refused")}

	rec := postLogin(t, repo, `{"email":"a@b.test","password":"whatever"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := loginBody(t, rec)
	assert.Equal(t, "internal error", body["message"])
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
