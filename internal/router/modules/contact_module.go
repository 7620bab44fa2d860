package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/draperhq/storefront-api/internal/container"
	handlers "github.com/draperhq/storefront-api/internal/interface/http"
	"github.com/draperhq/storefront-api/internal/interface/middleware"
	"github.com/draperhq/storefront-api/pkg/helpers"
)

// ContactModule accepts contact form submissions from anyone and lets
// admins read the inbox.

type ContactModule struct {
	Handler *handlers.ContactHandler
	JWT     *helpers.JWTManager
}

func NewContactModule(h *handlers.ContactHandler, jwt *helpers.JWTManager) *ContactModule {
	return &ContactModule{Handler: h, JWT: jwt}
}

func (m *ContactModule) Register(rg *gin.RouterGroup) {
	// Submissions are unauthenticated; the per-IP budget is the abuse control.
	submitLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIP(), nil)
	rg.POST("/contact", submitLimiter, m.Handler.Submit)

	admin := rg.Group("/contact")
	admin.Use(middleware.Auth(container.GetRedis(), m.JWT), middleware.AdminOnly())
	admin.GET("", m.Handler.List)
}
