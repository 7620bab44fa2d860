package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/draperhq/storefront-api/internal/application"
	"github.com/draperhq/storefront-api/internal/domain/entity"
	"github.com/draperhq/storefront-api/pkg/response"
	"github.com/draperhq/storefront-api/pkg/validation"
)

type OrderHandler struct {
	Svc *application.CheckoutService
}

func NewOrderHandler(svc *application.CheckoutService) *OrderHandler {
	return &OrderHandler{Svc: svc}
}

type shippingRequest struct {
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
	Phone      string `json:"phone" binding:"required,phone"`
}

type checkoutRequest struct {
	Shipping      shippingRequest `json:"shipping" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"required,payment"`
}

// Create POST /api/orders/create
func (h *OrderHandler) Create(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	order, err := h.Svc.Checkout(c.Request.Context(), c.GetString("userID"), application.CheckoutInput{
		Shipping: entity.ShippingAddress{
			Street:     req.Shipping.Street,
			City:       req.Shipping.City,
			PostalCode: req.Shipping.PostalCode,
			Country:    req.Shipping.Country,
			Phone:      req.Shipping.Phone,
		},
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		response.Error[any](c, statusFor(err), messageFor(err), nil)
		return
	}
	response.Success(c, http.StatusCreated, orderView(order), "order placed", nil)
}

// ListMine GET /api/orders/mine
func (h *OrderHandler) ListMine(c *gin.Context) {
	orders, err := h.Svc.ListMine(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		response.Error[any](c, statusFor(err), messageFor(err), nil)
		return
	}
	response.Success(c, http.StatusOK, orderViews(orders), "orders", map[string]any{"count": len(orders)})
}

// List GET /api/orders (admin)
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.Svc.ListAll(c.Request.Context())
	if err != nil {
		response.Error[any](c, statusFor(err), messageFor(err), nil)
		return
	}
	response.Success(c, http.StatusOK, orderViews(orders), "orders", map[string]any{"count": len(orders)})
}

// Confirm PUT /api/orders/:orderId/confirm (admin)
func (h *OrderHandler) Confirm(c *gin.Context) {
	order, err := h.Svc.Confirm(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		response.Error[any](c, statusFor(err), messageFor(err), nil)
		return
	}
	response.Success(c, http.StatusOK, orderView(order), "order confirmed", nil)
}
