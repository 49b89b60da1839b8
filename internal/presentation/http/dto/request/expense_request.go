package request

import "time"

// CreateExpenseRequest represents an expense creation request
type CreateExpenseRequest struct {
	Category string     `json:"category" binding:"required,min=1,max=100"`
	Reason   string     `json:"reason" binding:"required,min=1"`
	Amount   float64    `json:"amount" binding:"required,gt=0"`
	Date     *time.Time `json:"date"`
	Note     string     `json:"note"`
}

// ExpenseFilterRequest represents expense filter parameters
type ExpenseFilterRequest struct {
	Category  string `form:"category"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
