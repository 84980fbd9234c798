package services

import (
	"testing"

	"github.com/egorrya/pattaya-grad/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportLeadsXLSX(t *testing.T) {
	db := setupServiceTestDB(t)

	page, err := CreateLandingPage(db, testPagePayload("promo-a", "Промо A"))
	require.NoError(t, err)

	ip := "203.0.113.7"
	country := "TH"
	require.NoError(t, CreateLead(db, &models.Lead{
		Channel:       models.ChannelWhatsapp,
		Contact:       "+66801234567",
		IPAddress:     &ip,
		Country:       &country,
		LandingPageID: &page.ID,
	}))
	require.NoError(t, CreateLead(db, &models.Lead{
		Channel: models.ChannelTelegram,
		Contact: "@someone",
	}))

	t.Run("All leads", func(t *testing.T) {
		f, err := ExportLeadsXLSX(db, "", "Главная страница")
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Заявки")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"Дата", "Канал", "Контакт", "IP", "Страна", "Лендинг"}, rows[0])

		// Rows come out newest first.
		assert.Equal(t, "Telegram", rows[1][1])
		assert.Equal(t, "Главная страница", rows[1][5])

		assert.Equal(t, "WhatsApp", rows[2][1])
		assert.Equal(t, "+66801234567", rows[2][2])
		assert.Equal(t, "203.0.113.7", rows[2][3])
		assert.Equal(t, "TH", rows[2][4])
		assert.Equal(t, "Промо A", rows[2][5])
	})

	t.Run("Channel filter", func(t *testing.T) {
		f, err := ExportLeadsXLSX(db, models.ChannelWhatsapp, "Главная страница")
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Заявки")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "WhatsApp", rows[1][1])
	})
}
