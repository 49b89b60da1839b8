package request

import "time"

// SaleItemRequest represents one line of a sale submission
type SaleItemRequest struct {
	ProductID string  `json:"product_id" binding:"required,uuid"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Price     float64 `json:"price" binding:"omitempty,min=0"`
}

// RecordSaleRequest represents a sale recording request
type RecordSaleRequest struct {
	Date          *time.Time        `json:"date"`
	ClientCode    string            `json:"client_code" binding:"omitempty,max=100"`
	ClientName    string            `json:"client_name" binding:"omitempty,max=255"`
	StaffCode     string            `json:"staff_code" binding:"omitempty,max=100"`
	Discount      float64           `json:"discount" binding:"omitempty,min=0"`
	Commission    *float64          `json:"commission" binding:"omitempty,min=0"`
	PaymentMethod string            `json:"payment_method" binding:"required,oneof=cash card transfer"`
	Reference     string            `json:"reference" binding:"omitempty,max=255"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CancelSaleRequest represents a sale cancellation request
type CancelSaleRequest struct {
	Reason string `json:"reason" binding:"required,min=1"`
}

// DeleteSaleRequest carries the admin password that gates sale deletion
type DeleteSaleRequest struct {
	AdminPassword string `json:"admin_password" binding:"required"`
}

// SaleFilterRequest represents sale filter parameters
type SaleFilterRequest struct {
	Status     string `form:"status"`
	ClientCode string `form:"client_code"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
