package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/draperhq/storefront-api/internal/container"
	handlers "github.com/draperhq/storefront-api/internal/interface/http"
	"github.com/draperhq/storefront-api/internal/interface/middleware"
	"github.com/draperhq/storefront-api/pkg/helpers"
)

// StoreModule exposes the store locator.
// Public: GET /api/stores, GET /api/stores/:id
// Admin: POST/PUT/DELETE /api/stores

type StoreModule struct {
	Handler *handlers.StoreHandler
	JWT     *helpers.JWTManager
}

func NewStoreModule(h *handlers.StoreHandler, jwt *helpers.JWTManager) *StoreModule {
	return &StoreModule{Handler: h, JWT: jwt}
}

func (m *StoreModule) Register(rg *gin.RouterGroup) {
	browseLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)

	rg.GET("/stores", browseLimiter, m.Handler.List)
	rg.GET("/stores/:id", browseLimiter, m.Handler.Get)

	admin := rg.Group("/stores")
	admin.Use(middleware.Auth(container.GetRedis(), m.JWT), middleware.AdminOnly())
	{
		admin.POST("", m.Handler.Create)
		admin.PUT("/:id", m.Handler.Update)
		admin.DELETE("/:id", m.Handler.Delete)
	}
}
