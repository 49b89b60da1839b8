package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/studiopos/salon-api/internal/domain/enum"
)

// CommissionExpenseCategory is the fixed category assigned to expenses
// generated by commission settlements.
const CommissionExpenseCategory = "Comisiones"

// Expense represents a business expense. Commission settlements append one
// Expense per payment; those records are never updated afterwards.
type Expense struct {
	ID        uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	Category  string             `gorm:"size:100;not null" json:"category"`
	Reason    string             `gorm:"type:text;not null" json:"reason"`
	Amount    int64              `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Date      time.Time          `gorm:"not null" json:"date"`
	Status    enum.ExpenseStatus `gorm:"default:0" json:"status"`
	Note      string             `gorm:"type:text" json:"note"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
	DeletedAt gorm.DeletedAt     `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (e Expense) MarshalJSON() ([]byte, error) {
	type Alias Expense
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(e),
		Amount: float64(e.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}
