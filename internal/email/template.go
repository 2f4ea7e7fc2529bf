package email

import (
	"strings"
	"text/template"

	"github.com/dmitrijs2005/drishya/internal/models"
)

var orderConfirmationTmpl = template.Must(template.New("confirmation").Parse(`Hi {{.CustomerName}}!

Great news! We've received your order and our team is already getting started
on your video.

Order details
  Order ID:           {{.OrderID}}
  Video type:         {{.VideoType}}
  Plan:               {{.PlanName}}
  AI avatar:          {{.AvatarName}}
  Estimated delivery: {{.DeliveryDate.Format "Monday, January 2, 2006"}}
  Total:              ${{.OrderTotal}}

What happens next?
  1. Script review - our team reviews your script (24-48 hours)
  2. AI generation - your video is created with your chosen avatar
  3. Professional editing - our editors add the finishing touches
  4. Quality check - final review to ensure perfection
  5. Delivery - your video is delivered via email

Need help? Reply to this email or contact us at support@drishya.example.

Drishya - Creating Professional Videos with AI
`))

var statusUpdateTmpl = template.Must(template.New("status").Parse(`Order update

Status: {{.Stage}}
{{.Message}}

Order ID: {{.OrderID}}

Thank you for your patience. We'll keep you updated as your video progresses
through each stage.
`))

func renderOrderConfirmation(conf *models.OrderConfirmation) (string, error) {
	var b strings.Builder
	if err := orderConfirmationTmpl.Execute(&b, conf); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderStatusUpdate(orderID, stage, message string) (string, error) {
	var b strings.Builder
	data := struct {
		OrderID string
		Stage   string
		Message string
	}{OrderID: orderID, Stage: strings.ToUpper(strings.ReplaceAll(stage, "-", " ")), Message: message}
	if err := statusUpdateTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
