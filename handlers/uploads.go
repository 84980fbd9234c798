package handlers

import (
	"strings"

	"github.com/egorrya/pattaya-grad/services"

	"github.com/labstack/echo/v4"
)

// MaxUploadSize caps landing asset uploads at 5 MB.
const MaxUploadSize = 5 << 20

// UploadAssetHandler handles the guarded POST /api/admin/uploads. Stored
// assets back the logoPath and heroImage content fields.
func UploadAssetHandler(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "Файл не найден в запросе")
	}

	if file.Size > MaxUploadSize {
		return badRequest(c, "Файл слишком большой (максимум 5 МБ)")
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return badRequest(c, "Можно загружать только изображения")
	}

	if services.Storage == nil || !services.Storage.IsConfigured() {
		c.Logger().Error("Storage is not configured")
		return serverError(c)
	}

	key := services.NewAssetKey(file.Filename)
	result, err := services.Storage.Upload(c.Request().Context(), file, key)
	if err != nil {
		c.Logger().Errorf("Failed to store asset: %v", err)
		return serverError(c)
	}

	return okData(c, map[string]interface{}{
		"key":  result.Key,
		"path": result.URL,
		"size": result.FileSize,
	})
}
