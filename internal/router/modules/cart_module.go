package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/draperhq/storefront-api/internal/container"
	handlers "github.com/draperhq/storefront-api/internal/interface/http"
	"github.com/draperhq/storefront-api/internal/interface/middleware"
	"github.com/draperhq/storefront-api/pkg/helpers"
)

// CartModule exposes the per-user shopping cart. Every route requires a
// session; the handler enforces that the path user matches the caller.

type CartModule struct {
	Handler *handlers.CartHandler
	JWT     *helpers.JWTManager
}

func NewCartModule(h *handlers.CartHandler, jwt *helpers.JWTManager) *CartModule {
	return &CartModule{Handler: h, JWT: jwt}
}

func (m *CartModule) Register(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	cart.Use(
		middleware.Auth(container.GetRedis(), m.JWT),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		cart.GET("/:userId", m.Handler.Get)
		cart.POST("", m.Handler.AddItem)
		cart.DELETE("/:userId/:productId", m.Handler.RemoveItem)
		cart.DELETE("/:userId", m.Handler.Clear)
	}
}
