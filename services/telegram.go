package services

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/egorrya/pattaya-grad/models"
)

// TelegramAPIBaseURL is a variable so tests can point it at a fake server.
var TelegramAPIBaseURL = "https://api.telegram.org"

var chatIDSeparators = regexp.MustCompile(`[\s,;]+`)

// ParseTelegramChatIDs splits a free-form chat id list on whitespace, commas
// and semicolons.
func ParseTelegramChatIDs(raw *string) []string {
	if raw == nil {
		return nil
	}
	var ids []string
	for _, part := range chatIDSeparators.Split(*raw, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}

// SendTelegramNotification posts a new-lead message to every configured chat.
// Per-chat failures are logged and do not stop the remaining sends.
func SendTelegramNotification(botToken string, chatIDs []string, lead models.Lead, landingName string) {
	if botToken == "" || len(chatIDs) == 0 {
		return
	}

	sendURL := fmt.Sprintf("%s/bot%s/sendMessage", TelegramAPIBaseURL, botToken)
	lines := []string{
		"Новая заявка с лендинга",
		"Канал: " + models.ChannelLabel(lead.Channel),
		"Контакт: " + lead.Contact,
	}
	if landingName != "" {
		lines = append(lines, "Лендинг: "+landingName)
	}
	message := strings.Join(lines, "\n")

	for _, chatID := range chatIDs {
		resp, err := http.PostForm(sendURL, url.Values{
			"chat_id": {chatID},
			"text":    {message},
		})
		if err != nil {
			log.Printf("Failed to send Telegram notification to chat %s: %v", chatID, err)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			log.Printf("Failed to send Telegram notification to chat %s: status %d, details: %s", chatID, resp.StatusCode, string(body))
		}
		resp.Body.Close()
	}
}
