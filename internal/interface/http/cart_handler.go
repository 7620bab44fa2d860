package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/draperhq/storefront-api/internal/application"
	"github.com/draperhq/storefront-api/pkg/response"
	"github.com/draperhq/storefront-api/pkg/validation"
)

type CartHandler struct {
	Svc *application.CartService
}

func NewCartHandler(svc *application.CartService) *CartHandler {
	return &CartHandler{Svc: svc}
}

// cartOwner resolves the cart owner from the path and rejects access to
// another user's cart unless the caller is an admin.
func cartOwner(c *gin.Context) (string, bool) {
	owner := c.Param("userId")
	if owner == "" {
		owner = c.GetString("userID")
	}
	if owner != c.GetString("userID") && !c.GetBool("isAdmin") {
		response.Error[any](c, http.StatusForbidden, "cannot access another user's cart", nil)
		return "", false
	}
	return owner, true
}

// Get GET /api/cart/:userId
func (h *CartHandler) Get(c *gin.Context) {
	owner, ok := cartOwner(c)
	if !ok {
		return
	}
	cart, err := h.Svc.Get(c.Request.Context(), owner)
	if err != nil {
		response.Error[any](c, statusFor(err), messageFor(err), nil)
		return
	}
	response.Success(c, http.StatusOK, cartView(cart), "cart", map[string]any{"count": len(cart.Items)})
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,gte=1"`
}

// AddItem POST /api/cart
func (h *CartHandler) AddItem(c *gin.Context) {
	owner, ok := cartOwner(c)
	if !ok {
		return
	}
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cart, err := h.Svc.AddItem(c.Request.Context(), owner, req.ProductID, req.Quantity)
	if err != nil {
		response.Error[any](c, statusFor(err), messageFor(err), nil)
		return
	}
	response.Success(c, http.StatusOK, cartView(cart), "item added", nil)
}

// RemoveItem DELETE /api/cart/:userId/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	owner, ok := cartOwner(c)
	if !ok {
		return
	}
	cart, err := h.Svc.RemoveItem(c.Request.Context(), owner, c.Param("productId"))
	if err != nil {
		response.Error[any](c, statusFor(err), messageFor(err), nil)
		return
	}
	response.Success(c, http.StatusOK, cartView(cart), "item removed", nil)
}

// Clear DELETE /api/cart/:userId
func (h *CartHandler) Clear(c *gin.Context) {
	owner, ok := cartOwner(c)
	if !ok {
		return
	}
	if err := h.Svc.Clear(c.Request.Context(), owner); err != nil {
		response.Error[any](c, statusFor(err), messageFor(err), nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"cleared": true}, "cart cleared", nil)
}
