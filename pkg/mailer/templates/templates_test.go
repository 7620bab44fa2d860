package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draperhq/storefront-api/pkg/mailer"
)

func TestRenderOrderConfirmation(t *testing.T) {
	subject, html, err := Render(mailer.TemplateOrderConfirmation, map[string]any{
		"Name":    "Ada Draper",
		"OrderID": "ord-42",
		"Items": []map[string]any{
			{"Name": "Linen Blackout Curtains", "Quantity": 2, "Price": "$89.99"},
		},
		"Total":   "$179.98",
		"Address": "Herengracht 120, Amsterdam 1015 BT, Netherlands",
		"Company": "Draper Home",
	})
	require.NoError(t, err)
	assert.Equal(t, "Order confirmation #ord-42", subject)
	assert.Contains(t, html, "Ada Draper")
	assert.Contains(t, html, "Linen Blackout Curtains")
	assert.Contains(t, html, "$179.98")
}

func TestRenderResetPassword(t *testing.T) {
	subject, html, err := Render(mailer.TemplateResetPassword, map[string]any{
		"Name":      "Ada",
		"ResetURL":  "https://draperhome.test/reset-password/abc123",
		"ExpiresIn": "10m0s",
		"Company":   "Draper Home",
	})
	require.NoError(t, err)
	assert.Equal(t, "Reset your password", subject)
	assert.Contains(t, html, "https://draperhome.test/reset-password/abc123")
	assert.Contains(t, html, "10m0s")
}

func TestRenderContactReceipt(t *testing.T) {
	subject, html, err := Render(mailer.TemplateContactReceipt, map[string]any{
		"Name":    "Ada",
		"Subject": "Measuring service",
		"Company": "Draper Home",
	})
	require.NoError(t, err)
	assert.Equal(t, "We received your message", subject)
	assert.Contains(t, html, "Measuring service")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, _, err := Render("no_such_template", nil)
	assert.Error(t, err)
}

func TestSubjectFallbacks(t *testing.T) {
	assert.Equal(t, "Order confirmation", Subject(mailer.TemplateOrderConfirmation, map[string]any{}))
	assert.Equal(t, "Notification", Subject("mystery", nil))
}
