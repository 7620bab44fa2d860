package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/draperhq/storefront-api/internal/container"
	handlers "github.com/draperhq/storefront-api/internal/interface/http"
	"github.com/draperhq/storefront-api/internal/interface/middleware"
	"github.com/draperhq/storefront-api/pkg/helpers"
)

// OrderModule registers checkout and order management routes.
// Protected: POST /api/orders/create, GET /api/orders/mine
// Admin: GET /api/orders, PUT /api/orders/:orderId/confirm

type OrderModule struct {
	Handler *handlers.OrderHandler
	JWT     *helpers.JWTManager
}

func NewOrderModule(h *handlers.OrderHandler, jwt *helpers.JWTManager) *OrderModule {
	return &OrderModule{Handler: h, JWT: jwt}
}

func (m *OrderModule) Register(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	orders.Use(middleware.Auth(container.GetRedis(), m.JWT))

	// Checkout writes stock; keep the per-user budget tight.
	checkoutLimiter := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByUserID(), nil)
	orders.POST("/create", checkoutLimiter, m.Handler.Create)
	orders.GET("/mine", m.Handler.ListMine)

	orders.GET("", middleware.AdminOnly(), m.Handler.List)
	orders.PUT("/:orderId/confirm", middleware.AdminOnly(), m.Handler.Confirm)
}
