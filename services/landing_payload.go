package services

import (
	"strings"

	"github.com/egorrya/pattaya-grad/models"
)

// Payload validation for admin landing writes. Field errors carry the exact
// messages shown in the editor UI, so they are user-facing Russian strings.

func requireNonEmptyString(fields map[string]interface{}, key string) (string, error) {
	value, ok := fields[key].(string)
	if !ok {
		return "", NewValidationError("Поле %s должно быть строкой", key)
	}
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", NewValidationError("Поле %s не должно быть пустым", key)
	}
	return trimmed, nil
}

func requireString(fields map[string]interface{}, key string) (string, error) {
	value, ok := fields[key].(string)
	if !ok {
		return "", NewValidationError("Поле %s должно быть строкой", key)
	}
	return strings.TrimSpace(value), nil
}

func requireBoolean(fields map[string]interface{}, key string) (bool, error) {
	value, ok := fields[key].(bool)
	if !ok {
		return false, NewValidationError("Поле %s должно быть логическим значением", key)
	}
	return value, nil
}

// normalizeOptionalString maps absent, null and blank values to nil and
// rejects non-string values.
func normalizeOptionalString(fields map[string]interface{}, key string) (*string, error) {
	raw, present := fields[key]
	if !present || raw == nil {
		return nil, nil
	}
	value, ok := raw.(string)
	if !ok {
		return nil, NewValidationError("Не удалось обработать необязательное текстовое поле")
	}
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	return &trimmed, nil
}

// BuildLandingFields validates a decoded JSON object against the landing
// content contract and returns the normalized field set.
func BuildLandingFields(payload map[string]interface{}) (models.LandingFields, error) {
	var out models.LandingFields
	var err error

	if payload == nil {
		return out, NewValidationError("Данные запроса должны быть объектом")
	}

	if out.HeaderPhrase, err = requireNonEmptyString(payload, "headerPhrase"); err != nil {
		return out, err
	}
	if out.HeroImage, err = normalizeOptionalString(payload, "heroImage"); err != nil {
		return out, err
	}
	if out.HeroHeading, err = requireNonEmptyString(payload, "heroHeading"); err != nil {
		return out, err
	}
	if out.HeroDescription, err = requireNonEmptyString(payload, "heroDescription"); err != nil {
		return out, err
	}
	if out.HeroSupport, err = requireString(payload, "heroSupport"); err != nil {
		return out, err
	}
	if out.ButtonLabel, err = requireNonEmptyString(payload, "buttonLabel"); err != nil {
		return out, err
	}
	if out.Contact, err = requireNonEmptyString(payload, "contact"); err != nil {
		return out, err
	}
	if out.VideoURL, err = requireNonEmptyString(payload, "videoUrl"); err != nil {
		return out, err
	}
	if out.NextScreenTitle, err = requireNonEmptyString(payload, "nextScreenTitle"); err != nil {
		return out, err
	}
	if out.NextScreenDescription, err = requireNonEmptyString(payload, "nextScreenDescription"); err != nil {
		return out, err
	}
	if out.NextScreenQuestion, err = requireNonEmptyString(payload, "nextScreenQuestion"); err != nil {
		return out, err
	}
	if out.TelegramEnabled, err = requireBoolean(payload, "telegramEnabled"); err != nil {
		return out, err
	}
	if out.WhatsappEnabled, err = requireBoolean(payload, "whatsappEnabled"); err != nil {
		return out, err
	}
	if out.CustomScript, err = normalizeOptionalString(payload, "customScript"); err != nil {
		return out, err
	}
	if out.TelegramBotToken, err = normalizeOptionalString(payload, "telegramBotToken"); err != nil {
		return out, err
	}
	if out.TelegramChatIDs, err = normalizeOptionalString(payload, "telegramChatIds"); err != nil {
		return out, err
	}
	if out.NotificationEmail, err = normalizeOptionalString(payload, "notificationEmail"); err != nil {
		return out, err
	}
	if out.EmailFrom, err = normalizeOptionalString(payload, "emailFrom"); err != nil {
		return out, err
	}
	if out.LogoPath, err = requireNonEmptyString(payload, "logoPath"); err != nil {
		return out, err
	}

	return out, nil
}

// LandingPagePayload is the validated write payload for a multi-page landing.
type LandingPagePayload struct {
	models.LandingFields
	URLPath string
	Name    string
}

// BuildLandingPagePayload validates content fields plus urlPath and name.
func BuildLandingPagePayload(payload map[string]interface{}) (LandingPagePayload, error) {
	var out LandingPagePayload
	var err error

	if payload == nil {
		return out, NewValidationError("Данные запроса должны быть объектом")
	}

	if out.LandingFields, err = BuildLandingFields(payload); err != nil {
		return out, err
	}
	if out.URLPath, err = NormalizeLandingURLPath(payload["urlPath"]); err != nil {
		return out, err
	}
	if out.Name, err = requireNonEmptyString(payload, "name"); err != nil {
		return out, err
	}

	return out, nil
}
