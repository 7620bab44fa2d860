package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/draperhq/storefront-api/internal/application"
	"github.com/draperhq/storefront-api/pkg/response"
	"github.com/draperhq/storefront-api/pkg/validation"
)

type ContactHandler struct {
	Svc *application.ContactService
}

func NewContactHandler(svc *application.ContactService) *ContactHandler {
	return &ContactHandler{Svc: svc}
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required,min=10"`
}

// Submit POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	msg, err := h.Svc.Submit(c.Request.Context(), application.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		response.Error[any](c, statusFor(err), messageFor(err), nil)
		return
	}
	response.Success(c, http.StatusCreated, contactView(msg), "message received", nil)
}

// List GET /api/contact (admin)
func (h *ContactHandler) List(c *gin.Context) {
	msgs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.Error[any](c, statusFor(err), messageFor(err), nil)
		return
	}
	response.Success(c, http.StatusOK, contactViews(msgs), "messages", map[string]any{"count": len(msgs)})
}
