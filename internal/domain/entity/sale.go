package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/studiopos/salon-api/internal/domain/enum"
)

// Sale represents a recorded sale. The invoice number is a human-facing
// sequential identifier, distinct from the internal id; it is never reused,
// even after the sale is deleted.
type Sale struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNumber      int                `gorm:"unique;not null" json:"invoice_number"`
	Date               time.Time          `gorm:"not null" json:"date"`
	ClientCode         *string            `gorm:"size:100;index" json:"client_code,omitempty"`
	ClientName         string             `gorm:"size:255" json:"client_name"`
	StaffID            *uuid.UUID         `gorm:"type:uuid;index" json:"staff_id,omitempty"`
	Subtotal           int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Discount           int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Total              int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	PaymentMethod      enum.PaymentMethod `gorm:"default:0" json:"payment_method"`
	Reference          *string            `gorm:"size:255" json:"reference,omitempty"`
	Status             enum.SaleStatus    `gorm:"default:0" json:"status"`
	CancellationReason *string            `gorm:"type:text" json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
	DeletedAt          gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Staff *StaffMember `gorm:"foreignKey:StaffID" json:"-"`
	Items []SaleItem   `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		Subtotal float64 `json:"subtotal"`
		Discount float64 `json:"discount"`
		Total    float64 `json:"total"`
	}{
		Alias:    Alias(s),
		Subtotal: float64(s.Subtotal) / 100,
		Discount: float64(s.Discount) / 100,
		Total:    float64(s.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// SaleItem represents a line item in a sale. Name and Price are snapshots
// taken at sale time; later product edits do not rewrite past sales.
type SaleItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SaleID    uuid.UUID `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Price     int64     `gorm:"not null" json:"-"` // Final unit price in cents, excluded from JSON
	Total     int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i SaleItem) MarshalJSON() ([]byte, error) {
	type Alias SaleItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
		Total float64 `json:"total"`
	}{
		Alias: Alias(i),
		Price: float64(i.Price) / 100,
		Total: float64(i.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale item
func (i *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}
