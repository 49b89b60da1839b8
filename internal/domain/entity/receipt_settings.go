package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReceiptPaperWidthMM is the fixed receipt width. Stored overrides are
// clamped back to this value on every read.
const ReceiptPaperWidthMM = 70

// ReceiptSettings holds the user-editable receipt configuration. A single
// row exists per installation; defaults are seeded at startup.
type ReceiptSettings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Paper size in millimeters
	PaperWidth  int `gorm:"default:70" json:"paper_width"`
	PaperHeight int `gorm:"default:297" json:"paper_height"`

	// Font sizes in points
	TitleFontSize    int `gorm:"default:12" json:"title_font_size"`
	SubtitleFontSize int `gorm:"default:10" json:"subtitle_font_size"`
	BodyFontSize     int `gorm:"default:8" json:"body_font_size"`

	// Business header. Name and subtitle are required, the rest optional.
	BusinessName     string  `gorm:"size:255;not null" json:"business_name"`
	BusinessSubtitle string  `gorm:"size:255;not null" json:"business_subtitle"`
	BusinessAddress  *string `gorm:"size:255" json:"business_address,omitempty"`
	BusinessPhone    *string `gorm:"size:50" json:"business_phone,omitempty"`
	BusinessEmail    *string `gorm:"size:255" json:"business_email,omitempty"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *ReceiptSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReceiptSettings model
func (ReceiptSettings) TableName() string {
	return "receipt_settings"
}

// ClampWidth forces the paper width back to the fixed 70mm, regardless of
// what was stored.
func (s *ReceiptSettings) ClampWidth() {
	s.PaperWidth = ReceiptPaperWidthMM
}

// DefaultReceiptSettings returns the settings seeded on first startup.
func DefaultReceiptSettings() ReceiptSettings {
	return ReceiptSettings{
		PaperWidth:       ReceiptPaperWidthMM,
		PaperHeight:      297,
		TitleFontSize:    12,
		SubtitleFontSize: 10,
		BodyFontSize:     8,
		BusinessName:     "Salón de Belleza",
		BusinessSubtitle: "Estética y Cuidado Personal",
	}
}
