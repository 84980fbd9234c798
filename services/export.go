package services

import (
	"fmt"
	"time"

	"github.com/egorrya/pattaya-grad/models"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const leadSheetName = "Заявки"

var leadExportHeaders = []string{"Дата", "Канал", "Контакт", "IP", "Страна", "Лендинг"}

// ExportLeadsXLSX builds a spreadsheet of all leads for the given channel
// filter (empty means all), newest first.
func ExportLeadsXLSX(db *gorm.DB, channel, defaultLandingName string) (*excelize.File, error) {
	query := db.Model(&models.Lead{}).Preload("LandingPage").Order("created_at DESC")
	if channel != "" {
		query = query.Where("channel = ?", channel)
	}

	var leads []models.Lead
	if err := query.Find(&leads).Error; err != nil {
		return nil, fmt.Errorf("failed to load leads for export: %w", err)
	}

	f := excelize.NewFile()
	index, err := f.NewSheet(leadSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
	for i, header := range leadExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(leadSheetName, cell, header)
	}
	f.SetCellStyle(leadSheetName, "A1", "F1", headerStyle)
	f.SetColWidth(leadSheetName, "A", "A", 20)
	f.SetColWidth(leadSheetName, "B", "F", 18)

	for row, lead := range leads {
		landingName := defaultLandingName
		if lead.LandingPage != nil {
			landingName = lead.LandingPage.Name
		}
		values := []interface{}{
			lead.CreatedAt.Format(time.DateTime),
			models.ChannelLabel(lead.Channel),
			lead.Contact,
			stringOrDash(lead.IPAddress),
			stringOrDash(lead.Country),
			landingName,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(leadSheetName, cell, value)
		}
	}

	return f, nil
}

func stringOrDash(value *string) string {
	if value == nil || *value == "" {
		return "—"
	}
	return *value
}
