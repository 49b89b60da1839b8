package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/studiopos/salon-api/internal/domain/enum"
)

// StaffMember represents a collaborator who earns per-sale commission.
type StaffMember struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Code           string         `gorm:"size:100;unique;not null" json:"code"`
	Name           string         `gorm:"size:255;not null" json:"name"`
	Phone          string         `gorm:"size:50" json:"phone"`
	CommissionRate float64        `gorm:"not null;default:0" json:"commission_rate"` // percent
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Sales     []StaffSale     `gorm:"foreignKey:StaffID" json:"sales,omitempty"`
	Discounts []StaffDiscount `gorm:"foreignKey:StaffID" json:"discounts,omitempty"`
}

// BeforeCreate generates a UUID before creating a new staff member
func (s *StaffMember) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StaffMember model
func (StaffMember) TableName() string {
	return "staff_members"
}

// UnpaidCommission returns the sum of commissions on sales whose commission
// has not yet been paid out, in cents.
func (s *StaffMember) UnpaidCommission() int64 {
	var total int64
	for _, sale := range s.Sales {
		if !sale.CommissionPaid {
			total += sale.Commission
		}
	}
	return total
}

// ActiveDiscountTotal returns the sum of discounts still counting against
// the member's pending commission, in cents.
func (s *StaffMember) ActiveDiscountTotal() int64 {
	var total int64
	for _, d := range s.Discounts {
		if d.Status == enum.DiscountStatusActive {
			total += d.Amount
		}
	}
	return total
}

// PendingCommission returns the amount currently owed to the member:
// unpaid commission minus active discounts, floored at zero. Always
// recomputed from the loaded sales and discounts, never cached.
func (s *StaffMember) PendingCommission() int64 {
	pending := s.UnpaidCommission() - s.ActiveDiscountTotal()
	if pending < 0 {
		return 0
	}
	return pending
}

// StaffSale is the staff-scoped projection of a recorded sale. It is created
// once when a sale referencing the member is recorded; CommissionPaid flips
// false to true exactly once, at commission payment time.
type StaffSale struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StaffID        uuid.UUID `gorm:"type:uuid;not null;index" json:"staff_id"`
	SaleID         uuid.UUID `gorm:"type:uuid;not null;index" json:"sale_id"`
	Date           time.Time `gorm:"not null" json:"date"`
	Total          int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Commission     int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CommissionPaid bool      `gorm:"not null;default:false" json:"commission_paid"`
	Items          LineItems `gorm:"type:jsonb" json:"items"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s StaffSale) MarshalJSON() ([]byte, error) {
	type Alias StaffSale
	return json.Marshal(&struct {
		Alias
		Total      float64 `json:"total"`
		Commission float64 `json:"commission"`
	}{
		Alias:      Alias(s),
		Total:      float64(s.Total) / 100,
		Commission: float64(s.Commission) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new staff sale record
func (s *StaffSale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StaffSale model
func (StaffSale) TableName() string {
	return "staff_sales"
}

// StaffDiscount is a deduction against a member's pending commission,
// distinct from a sale-level price discount.
type StaffDiscount struct {
	ID                 uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	StaffID            uuid.UUID           `gorm:"type:uuid;not null;index" json:"staff_id"`
	Date               time.Time           `gorm:"not null" json:"date"`
	Amount             int64               `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Reason             string              `gorm:"type:text;not null" json:"reason"`
	Status             enum.DiscountStatus `gorm:"default:0" json:"status"`
	CancellationReason *string             `gorm:"type:text" json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (d StaffDiscount) MarshalJSON() ([]byte, error) {
	type Alias StaffDiscount
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(d),
		Amount: float64(d.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new staff discount
func (d *StaffDiscount) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StaffDiscount model
func (StaffDiscount) TableName() string {
	return "staff_discounts"
}
