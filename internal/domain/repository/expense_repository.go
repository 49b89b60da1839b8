package repository

import (
	"context"
	"time"

	"github.com/studiopos/salon-api/internal/domain/entity"
	"github.com/studiopos/salon-api/pkg/pagination"
)

// ExpenseFilterParams holds filtering options for listing expenses.
type ExpenseFilterParams struct {
	Pagination *pagination.Params
	Category   string
	StartDate  *time.Time
	EndDate    *time.Time
}

// ExpenseRepository defines the interface for expense data access.
// Expenses are append-only; there is no update or delete operation.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	List(ctx context.Context, params *ExpenseFilterParams) ([]entity.Expense, int64, error)
}
