package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/draperhq/storefront-api/internal/container"
	handlers "github.com/draperhq/storefront-api/internal/interface/http"
	"github.com/draperhq/storefront-api/internal/interface/middleware"
	"github.com/draperhq/storefront-api/pkg/helpers"
)

// CatalogModule exposes the product catalog.
// Public: GET /api/products, GET /api/products/search, GET /api/products/:id
// Admin: POST/PUT/DELETE /api/products, POST /api/products/:id/image

type CatalogModule struct {
	Handler *handlers.ProductHandler
	JWT     *helpers.JWTManager
}

func NewCatalogModule(h *handlers.ProductHandler, jwt *helpers.JWTManager) *CatalogModule {
	return &CatalogModule{Handler: h, JWT: jwt}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	browseLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil)
	searchLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)

	rg.GET("/products", browseLimiter, m.Handler.List)
	rg.GET("/products/search", searchLimiter, m.Handler.Search)
	rg.GET("/products/:id", browseLimiter, m.Handler.Get)

	admin := rg.Group("/products")
	admin.Use(middleware.Auth(container.GetRedis(), m.JWT), middleware.AdminOnly())
	{
		admin.POST("", m.Handler.Create)
		admin.PUT("/:id", m.Handler.Update)
		admin.DELETE("/:id", m.Handler.Delete)
		admin.POST("/:id/image", m.Handler.UploadImage)
	}
}
