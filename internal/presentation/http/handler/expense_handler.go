package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studiopos/salon-api/internal/application/service"
	"github.com/studiopos/salon-api/internal/domain/repository"
	"github.com/studiopos/salon-api/internal/presentation/http/dto/request"
	"github.com/studiopos/salon-api/internal/presentation/http/dto/response"
	"github.com/studiopos/salon-api/pkg/pagination"
)

// ExpenseHandler handles expense-related HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpense records a manually entered expense
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req request.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateExpenseInput{
		Category: req.Category,
		Reason:   req.Reason,
		Amount:   req.Amount,
		Note:     req.Note,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Expense recorded successfully", expense)
}

// ListExpenses lists expenses with filtering
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	var req request.ExpenseFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ExpenseFilterParams{
		Pagination: &pagination.Params{Page: req.Page, PerPage: req.PerPage},
		Category:   req.Category,
	}

	if req.StartDate != "" {
		if t, err := time.Parse("2006-01-02", req.StartDate); err == nil {
			params.StartDate = &t
		}
	}
	if req.EndDate != "" {
		if t, err := time.Parse("2006-01-02", req.EndDate); err == nil {
			params.EndDate = &t
		}
	}

	result, err := h.expenseService.ListExpenses(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Expenses retrieved successfully", result)
}
