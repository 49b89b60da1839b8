package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client represents a customer of the business.
type Client struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Code      string         `gorm:"size:100;unique;not null" json:"code"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	Email     *string        `gorm:"size:255" json:"email,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Purchases []ClientPurchase `gorm:"foreignKey:ClientID" json:"purchases,omitempty"`
}

// BeforeCreate generates a UUID before creating a new client
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Client model
func (Client) TableName() string {
	return "clients"
}

// ClientPurchase is the client-scoped projection of a recorded sale,
// appended to the client's history at sale time. Deleting or cancelling
// the sale does not remove it.
type ClientPurchase struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ClientID  uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`
	SaleID    uuid.UUID `gorm:"type:uuid;not null;index" json:"sale_id"`
	Date      time.Time `gorm:"not null" json:"date"`
	Total     int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Items     LineItems `gorm:"type:jsonb" json:"items"`
	CreatedAt time.Time `json:"created_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p ClientPurchase) MarshalJSON() ([]byte, error) {
	type Alias ClientPurchase
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(p),
		Total: float64(p.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new client purchase
func (p *ClientPurchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ClientPurchase model
func (ClientPurchase) TableName() string {
	return "client_purchases"
}
