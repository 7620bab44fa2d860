package modules

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handlers "github.com/draperhq/storefront-api/internal/interface/http"
	"github.com/draperhq/storefront-api/pkg/helpers"
)

func registeredRoutes(t *testing.T, m *UserModule) map[string]bool {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	m.Register(engine.Group("/api"))

	routes := map[string]bool{}
	for _, r := range engine.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	return routes
}

func TestUserModuleRoutePaths(t *testing.T) {
	h := handlers.NewUserHandler(nil, nil, "", false)
	m := NewUserModule(h, helpers.NewJWTManager("test-secret", time.Hour))

	routes := registeredRoutes(t, m)

	require.True(t, routes["POST /api/users/registerUser"])
	require.True(t, routes["POST /api/users/login"])
	require.True(t, routes["POST /api/users/forgot-password"])
	require.True(t, routes["POST /api/users/reset-password/:token"])
	require.True(t, routes["GET /api/users/profile"])
	require.True(t, routes["DELETE /api/users/:id"])

	// Admin list answers on the exact documented path, not via a
	// trailing-slash redirect.
	assert.True(t, routes["GET /api/users"])
	assert.False(t, routes["GET /api/users/"])
}
