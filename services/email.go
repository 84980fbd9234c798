package services

import (
	"bytes"
	"fmt"
	"html/template"
	"log"

	"github.com/egorrya/pattaya-grad/config"
	"github.com/egorrya/pattaya-grad/models"
	"github.com/microcosm-cc/bluemonday"
	"github.com/resend/resend-go/v2"
)

// Email represents an email message
type Email struct {
	To []string
	// From overrides the configured sender address when non-empty.
	From     string
	Subject  string
	HTMLBody string
	TextBody string
}

// contactPolicy strips any markup from visitor-supplied text before it is
// interpolated into the HTML body.
var contactPolicy = bluemonday.StrictPolicy()

var leadEmailTemplate = template.Must(template.New("lead_email").Parse(`<h2>Новая заявка с лендинга</h2>
<p><strong>Канал:</strong> {{.ChannelLabel}}</p>
<p><strong>Контакт:</strong> {{.Contact}}</p>
{{if .LandingName}}<p><strong>Лендинг:</strong> {{.LandingName}}</p>{{end}}
{{if .IPAddress}}<p><strong>IP:</strong> {{.IPAddress}}</p>{{end}}
{{if .Country}}<p><strong>Страна:</strong> {{.Country}}</p>{{end}}`))

// BuildLeadNotificationEmail renders the new-lead notification for the
// given recipient.
func BuildLeadNotificationEmail(toEmail string, lead models.Lead, landingName string) (*Email, error) {
	data := struct {
		ChannelLabel string
		Contact      string
		LandingName  string
		IPAddress    string
		Country      string
	}{
		ChannelLabel: models.ChannelLabel(lead.Channel),
		Contact:      contactPolicy.Sanitize(lead.Contact),
		LandingName:  landingName,
	}
	if lead.IPAddress != nil {
		data.IPAddress = *lead.IPAddress
	}
	if lead.Country != nil {
		data.Country = *lead.Country
	}

	var buf bytes.Buffer
	if err := leadEmailTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render lead email: %w", err)
	}

	textBody := fmt.Sprintf("Новая заявка с лендинга\nКанал: %s\nКонтакт: %s", data.ChannelLabel, data.Contact)
	if landingName != "" {
		textBody += "\nЛендинг: " + landingName
	}

	return &Email{
		To:       []string{toEmail},
		Subject:  "Новая заявка с лендинга",
		HTMLBody: buf.String(),
		TextBody: textBody,
	}, nil
}

// SendEmail sends an email using Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	// In test mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	if email.HTMLBody == "" && email.TextBody == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    senderIdentity(cfg, email),
		To:      email.To,
		Subject: email.Subject,
	}
	if email.HTMLBody != "" {
		params.Html = email.HTMLBody
	}
	if email.TextBody != "" {
		params.Text = email.TextBody
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}

	log.Printf("Email sent to %v (id: %s)", email.To, sent.Id)
	return nil
}

// senderIdentity resolves the From header: the landing's own sender address
// when set, the configured one otherwise.
func senderIdentity(cfg *config.Config, email *Email) string {
	from := cfg.EmailFrom
	if email.From != "" {
		from = email.From
	}
	return fmt.Sprintf("%s <%s>", cfg.EmailFromName, from)
}

func logEmailToConsole(email *Email) {
	log.Printf("[EMAIL TEST MODE] To: %v | Subject: %s", email.To, email.Subject)
	if email.TextBody != "" {
		log.Printf("[EMAIL TEST MODE] Body: %s", email.TextBody)
	}
}
