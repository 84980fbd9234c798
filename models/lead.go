package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact channels a visitor can choose on the call-to-action form.
const (
	ChannelWhatsapp = "whatsapp"
	ChannelTelegram = "telegram"
)

// MinContactLength is the minimum accepted contact length after trimming.
const MinContactLength = 3

// Lead is a visitor-submitted contact record. Leads are append-only: no
// exposed operation mutates or deletes them.
type Lead struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`

	Channel   string  `gorm:"not null;index" json:"channel"`
	Contact   string  `gorm:"not null" json:"contact"`
	IPAddress *string `gorm:"type:varchar(45)" json:"ipAddress"`
	Country   *string `gorm:"type:varchar(8)" json:"country"`

	// Weak back-reference to the originating page. Deleting the page keeps
	// the lead and nulls the reference.
	LandingPageID *string      `gorm:"type:uuid;index;constraint:OnDelete:SET NULL" json:"landingPageId,omitempty"`
	LandingPage   *LandingPage `gorm:"foreignKey:LandingPageID" json:"-"`
}

// BeforeCreate hook to generate UUID
func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Lead model
func (Lead) TableName() string {
	return "leads"
}

// IsValidChannel checks if the channel is one of the allowed values
func IsValidChannel(channel string) bool {
	return channel == ChannelWhatsapp || channel == ChannelTelegram
}

// ChannelLabel returns the human-readable label used in notifications
func ChannelLabel(channel string) string {
	if channel == ChannelTelegram {
		return "Telegram"
	}
	return "WhatsApp"
}
