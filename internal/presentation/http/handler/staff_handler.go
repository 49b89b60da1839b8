package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/studiopos/salon-api/internal/application/service"
	"github.com/studiopos/salon-api/internal/presentation/http/dto/request"
	"github.com/studiopos/salon-api/internal/presentation/http/dto/response"
)

// StaffHandler handles staff-related HTTP requests
type StaffHandler struct {
	staffService      *service.StaffService
	ledgerService     *service.LedgerService
	credentialService *service.CredentialService
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(
	staffService *service.StaffService,
	ledgerService *service.LedgerService,
	credentialService *service.CredentialService,
) *StaffHandler {
	return &StaffHandler{
		staffService:      staffService,
		ledgerService:     ledgerService,
		credentialService: credentialService,
	}
}

// CreateStaff creates a new staff member
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var req request.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	staff, err := h.staffService.CreateStaff(c.Request.Context(), &service.CreateStaffInput{
		Code:           req.Code,
		Name:           req.Name,
		Phone:          req.Phone,
		CommissionRate: req.CommissionRate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Staff member created successfully", staff)
}

// GetStaff retrieves a staff member with full history
func (h *StaffHandler) GetStaff(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid staff ID")
		return
	}

	staff, err := h.staffService.GetStaff(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Staff member retrieved successfully", staff)
}

// ListStaff lists all staff members
func (h *StaffHandler) ListStaff(c *gin.Context) {
	members, err := h.staffService.ListStaff(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Staff members retrieved successfully", members)
}

// UpdateStaff updates a staff member
func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid staff ID")
		return
	}

	var req request.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	staff, err := h.staffService.UpdateStaff(c.Request.Context(), id, &service.UpdateStaffInput{
		Name:           req.Name,
		Phone:          req.Phone,
		CommissionRate: req.CommissionRate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Staff member updated successfully", staff)
}

// DeleteStaff removes a staff member. Gated by the admin password.
func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid staff ID")
		return
	}

	var req request.DeleteStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.credentialService.Validate(c.Request.Context(), req.AdminPassword); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.staffService.DeleteStaff(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Staff member deleted successfully", nil)
}

// GetBalance returns a member's current commission balance
func (h *StaffHandler) GetBalance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid staff ID")
		return
	}

	balance, err := h.ledgerService.GetBalance(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Commission balance retrieved successfully", balance)
}

// ListBalances returns every member's commission balance
func (h *StaffHandler) ListBalances(c *gin.Context) {
	balances, err := h.ledgerService.ListBalances(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Commission balances retrieved successfully", balances)
}

// AddDiscount registers a deduction against a member's pending commission
func (h *StaffHandler) AddDiscount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid staff ID")
		return
	}

	var req request.AddDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.AddDiscountInput{
		Amount: req.Amount,
		Reason: req.Reason,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	discount, err := h.ledgerService.AddDiscount(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Discount added successfully", discount)
}

// CancelDiscount cancels an active discount
func (h *StaffHandler) CancelDiscount(c *gin.Context) {
	staffID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid staff ID")
		return
	}

	discountID, err := uuid.Parse(c.Param("discountId"))
	if err != nil {
		response.BadRequest(c, "Invalid discount ID")
		return
	}

	var req request.CancelDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	discount, err := h.ledgerService.CancelDiscount(c.Request.Context(), staffID, discountID, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount cancelled successfully", discount)
}

// PayCommission settles a member's pending commission
func (h *StaffHandler) PayCommission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid staff ID")
		return
	}

	expense, err := h.ledgerService.PayCommission(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	if expense == nil {
		response.OK(c, "No pending commission to pay", nil)
		return
	}

	response.OK(c, "Commission paid successfully", expense)
}

// ClearHistory wipes a member's sale and discount history. Gated by the
// admin password.
func (h *StaffHandler) ClearHistory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid staff ID")
		return
	}

	var req request.ClearHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.credentialService.Validate(c.Request.Context(), req.AdminPassword); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.staffService.ClearHistory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Staff history cleared successfully", nil)
}
