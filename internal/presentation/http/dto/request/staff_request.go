package request

import "time"

// CreateStaffRequest represents a staff member creation request
type CreateStaffRequest struct {
	Code           string  `json:"code" binding:"required,min=1,max=100"`
	Name           string  `json:"name" binding:"required,min=2,max=255"`
	Phone          string  `json:"phone" binding:"omitempty,max=50"`
	CommissionRate float64 `json:"commission_rate" binding:"min=0,max=100"`
}

// UpdateStaffRequest represents a staff member update request
type UpdateStaffRequest struct {
	Name           *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Phone          *string  `json:"phone" binding:"omitempty,max=50"`
	CommissionRate *float64 `json:"commission_rate" binding:"omitempty,min=0,max=100"`
}

// AddDiscountRequest represents a staff discount registration request
type AddDiscountRequest struct {
	Amount float64    `json:"amount" binding:"required,gt=0"`
	Reason string     `json:"reason" binding:"required,min=1"`
	Date   *time.Time `json:"date"`
}

// CancelDiscountRequest represents a staff discount cancellation request
type CancelDiscountRequest struct {
	Reason string `json:"reason" binding:"required,min=1"`
}

// DeleteStaffRequest carries the admin password that gates removing a
// staff member
type DeleteStaffRequest struct {
	AdminPassword string `json:"admin_password" binding:"required"`
}

// ClearHistoryRequest carries the admin password that gates wiping a
// member's sale and discount history
type ClearHistoryRequest struct {
	AdminPassword string `json:"admin_password" binding:"required"`
}
