package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/draperhq/storefront-api/internal/application"
	"github.com/draperhq/storefront-api/pkg/response"
	"github.com/draperhq/storefront-api/pkg/validation"
)

type StoreHandler struct {
	Svc *application.StoreService
}

func NewStoreHandler(svc *application.StoreService) *StoreHandler {
	return &StoreHandler{Svc: svc}
}

type storeRequest struct {
	Name         string  `json:"name" binding:"required"`
	Street       string  `json:"street" binding:"required"`
	City         string  `json:"city" binding:"required"`
	Country      string  `json:"country" binding:"required"`
	Phone        string  `json:"phone" binding:"required,phone"`
	Latitude     float64 `json:"latitude" binding:"gte=-90,lte=90"`
	Longitude    float64 `json:"longitude" binding:"gte=-180,lte=180"`
	OpeningHours string  `json:"opening_hours"`
}

func (r *storeRequest) toInput() application.StoreInput {
	return application.StoreInput{
		Name:         r.Name,
		Street:       r.Street,
		City:         r.City,
		Country:      r.Country,
		Phone:        r.Phone,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		OpeningHours: r.OpeningHours,
	}
}

// List GET /api/stores
func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.Error[any](c, statusFor(err), messageFor(err), nil)
		return
	}
	response.Success(c, http.StatusOK, storeViews(stores), "stores", map[string]any{"count": len(stores)})
}

// Get GET /api/stores/:id
func (h *StoreHandler) Get(c *gin.Context) {
	store, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error[any](c, statusFor(err), messageFor(err), nil)
		return
	}
	response.Success(c, http.StatusOK, storeView(store), "store", nil)
}

// Create POST /api/stores (admin)
func (h *StoreHandler) Create(c *gin.Context) {
	var req storeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	store, err := h.Svc.Create(c.Request.Context(), req.toInput())
	if err != nil {
		response.Error[any](c, statusFor(err), messageFor(err), nil)
		return
	}
	response.Success(c, http.StatusCreated, storeView(store), "store created", nil)
}

// Update PUT /api/stores/:id (admin)
func (h *StoreHandler) Update(c *gin.Context) {
	var req storeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	store, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		response.Error[any](c, statusFor(err), messageFor(err), nil)
		return
	}
	response.Success(c, http.StatusOK, storeView(store), "store updated", nil)
}

// Delete DELETE /api/stores/:id (admin)
func (h *StoreHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error[any](c, statusFor(err), messageFor(err), nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "store deleted", nil)
}
