package service

import (
	"context"
	"time"

	"github.com/studiopos/salon-api/internal/domain/entity"
	"github.com/studiopos/salon-api/internal/domain/enum"
	"github.com/studiopos/salon-api/internal/domain/repository"
	"github.com/studiopos/salon-api/pkg/apperror"
	"github.com/studiopos/salon-api/pkg/pagination"
)

// ExpenseService handles expense recording and listing. Expenses are
// append-only; commission settlements add theirs through the ledger.
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// CreateExpenseInput represents the create expense input
type CreateExpenseInput struct {
	Category string
	Reason   string
	Amount   float64
	Date     time.Time
	Note     string
}

// CreateExpense records a manually entered expense
func (s *ExpenseService) CreateExpense(ctx context.Context, input *CreateExpenseInput) (*entity.Expense, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Expense amount must be greater than zero")
	}
	if input.Category == "" {
		return nil, apperror.NewBadRequestError("A category is required")
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	expense := &entity.Expense{
		Category: input.Category,
		Reason:   input.Reason,
		Amount:   ToCents(input.Amount),
		Date:     date,
		Status:   enum.ExpenseStatusActive,
		Note:     input.Note,
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// ListExpenses lists expenses with filtering
func (s *ExpenseService) ListExpenses(ctx context.Context, params *repository.ExpenseFilterParams) (*pagination.Result[entity.Expense], error) {
	expenses, total, err := s.expenseRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.New(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewResult(expenses, pag), nil
}
