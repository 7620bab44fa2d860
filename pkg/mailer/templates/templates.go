package templates

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/draperhq/storefront-api/pkg/mailer"
)

// Transactional email bodies. Kept deliberately plain: inline-styled HTML
// renders consistently across clients.

var tmpl = template.Must(template.New("emails").Parse(`
{{define "order_confirmation"}}
<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">
  <h2>Thank you for your order, {{.Name}}!</h2>
  <p>Your order <strong>#{{.OrderID}}</strong> has been received and is being prepared.</p>
  <table style="width:100%;border-collapse:collapse">
    <tr style="text-align:left;border-bottom:1px solid #ddd">
      <th style="padding:8px">Item</th><th style="padding:8px">Qty</th><th style="padding:8px">Price</th>
    </tr>
    {{range .Items}}
    <tr style="border-bottom:1px solid #eee">
      <td style="padding:8px">{{.Name}}</td>
      <td style="padding:8px">{{.Quantity}}</td>
      <td style="padding:8px">{{.Price}}</td>
    </tr>
    {{end}}
  </table>
  <p style="font-size:16px"><strong>Total: {{.Total}}</strong></p>
  <p>We will deliver to: {{.Address}}</p>
  <p style="color:#888;font-size:12px">{{.Company}}</p>
</div>
{{end}}

{{define "reset_password"}}
<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">
  <h2>Reset your password</h2>
  <p>Hi {{.Name}},</p>
  <p>We received a request to reset your password. This link is valid for {{.ExpiresIn}} and can be used once:</p>
  <p><a href="{{.ResetURL}}" style="background:#2d6cdf;color:#fff;padding:10px 18px;text-decoration:none;border-radius:4px">Reset password</a></p>
  <p>If you did not request this, you can safely ignore this email.</p>
  <p style="color:#888;font-size:12px">{{.Company}}</p>
</div>
{{end}}

{{define "contact_receipt"}}
<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">
  <h2>We received your message</h2>
  <p>Hi {{.Name}},</p>
  <p>Thanks for reaching out about "{{.Subject}}". Our team will get back to you shortly.</p>
  <p style="color:#888;font-size:12px">{{.Company}}</p>
</div>
{{end}}
`))

// Render produces the subject and HTML body for a template job.
func Render(name string, data map[string]any) (subject, html string, err error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", "", fmt.Errorf("render %s: %w", name, err)
	}
	return Subject(name, data), buf.String(), nil
}

// Subject returns the subject line for a template job.
func Subject(name string, data map[string]any) string {
	switch name {
	case mailer.TemplateOrderConfirmation:
		if id, ok := data["OrderID"]; ok {
			return fmt.Sprintf("Order confirmation #%v", id)
		}
		return "Order confirmation"
	case mailer.TemplateResetPassword:
		return "Reset your password"
	case mailer.TemplateContactReceipt:
		return "We received your message"
	default:
		return "Notification"
	}
}
