package models

import (
	"time"
)

// LandingContentID is the fixed primary key of the singleton landing row.
const LandingContentID = "landing"

// LandingFields holds the editable display and notification content shared by
// the singleton landing and the multi-page landings.
type LandingFields struct {
	HeaderPhrase          string  `gorm:"not null" json:"headerPhrase"`
	HeroImage             *string `json:"heroImage"`
	HeroHeading           string  `gorm:"type:text;not null" json:"heroHeading"`
	HeroDescription       string  `gorm:"type:text;not null" json:"heroDescription"`
	HeroSupport           string  `gorm:"type:text" json:"heroSupport"`
	ButtonLabel           string  `gorm:"not null" json:"buttonLabel"`
	Contact               string  `gorm:"not null" json:"contact"`
	VideoURL              string  `gorm:"not null" json:"videoUrl"`
	NextScreenTitle       string  `gorm:"type:text;not null" json:"nextScreenTitle"`
	NextScreenDescription string  `gorm:"type:text;not null" json:"nextScreenDescription"`
	NextScreenQuestion    string  `gorm:"type:text;not null" json:"nextScreenQuestion"`
	TelegramEnabled       bool    `gorm:"not null;default:true" json:"telegramEnabled"`
	WhatsappEnabled       bool    `gorm:"not null;default:true" json:"whatsappEnabled"`
	CustomScript          *string `gorm:"type:text" json:"customScript"`
	TelegramBotToken      *string `json:"telegramBotToken"`
	TelegramChatIDs       *string `gorm:"column:telegram_chat_ids" json:"telegramChatIds"`
	NotificationEmail     *string `json:"notificationEmail"`
	// EmailFrom overrides the configured sender address for this landing's
	// notifications.
	EmailFrom *string `json:"emailFrom"`
	LogoPath  string  `gorm:"not null" json:"logoPath"`
}

// LandingContent is the singleton landing served at the site root.
// It is created lazily with default content on first read.
type LandingContent struct {
	ID        string    `gorm:"primarykey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	LandingFields `gorm:"embedded"`
}

// TableName specifies the table name for LandingContent model
func (LandingContent) TableName() string {
	return "landing_contents"
}

// DefaultLandingFields returns the content used to seed the singleton landing.
func DefaultLandingFields() LandingFields {
	heroImage := "/assets/images/image.webp"
	return LandingFields{
		HeaderPhrase:          "15 лет опыта. Более 2000 завершенных сделок",
		HeroImage:             &heroImage,
		HeroHeading:           "📘 Отправим каталог недвижимости Паттайи и поможем с выбором.",
		HeroDescription:       "🚗 Заберем вас от отеля и за 3 часа покажем реальные и выгодные варианты, достойные внимания.",
		HeroSupport:           "Мы отправим каталог моментально, и менеджер свяжется в WhatsApp или Telegram.",
		ButtonLabel:           "Получить каталог",
		Contact:               "+6680-151-31-11",
		VideoURL:              "https://www.youtube.com/embed/GBiYp3E1_ws?autoplay=1&rel=0",
		NextScreenTitle:       "🔑 Мы поможем подобрать апартаменты и сопроводим сделку до получения ключей и документов.",
		NextScreenDescription: "Оставьте контакт и мы пришлем каталог недвижимости. Подберем объекты под вас и запланируем экскурсию. Пишите, звоните.",
		NextScreenQuestion:    "Куда отправить каталог недвижимости Паттайи?",
		TelegramEnabled:       true,
		WhatsappEnabled:       true,
		LogoPath:              "/assets/images/logo.webp",
	}
}
