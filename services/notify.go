package services

import (
	"log"

	"github.com/egorrya/pattaya-grad/config"
	"github.com/egorrya/pattaya-grad/models"
)

// NotifyLead pushes a new-lead notification over every channel the resolved
// landing configures. All failures are logged and swallowed: the lead is
// already persisted and the intake response never depends on delivery.
func NotifyLead(cfg *config.Config, fields models.LandingFields, landingName string, lead models.Lead) {
	if fields.TelegramBotToken != nil {
		chatIDs := ParseTelegramChatIDs(fields.TelegramChatIDs)
		SendTelegramNotification(*fields.TelegramBotToken, chatIDs, lead, landingName)
	}

	if fields.NotificationEmail != nil {
		email, err := BuildLeadNotificationEmail(*fields.NotificationEmail, lead, landingName)
		if err != nil {
			log.Printf("Failed to build lead notification email: %v", err)
			return
		}
		if fields.EmailFrom != nil {
			email.From = *fields.EmailFrom
		}
		if err := SendEmail(cfg, email); err != nil {
			log.Printf("Failed to send lead notification email: %v", err)
		}
	}
}
