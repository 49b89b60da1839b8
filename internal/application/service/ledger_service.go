package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/studiopos/salon-api/internal/domain/entity"
	"github.com/studiopos/salon-api/internal/domain/enum"
	"github.com/studiopos/salon-api/internal/domain/repository"
	"github.com/studiopos/salon-api/pkg/apperror"
)

// LedgerService handles the commission ledger: pending balances, staff
// discounts and commission settlement.
type LedgerService struct {
	staffRepo repository.StaffRepository
}

// NewLedgerService creates a new ledger service
func NewLedgerService(staffRepo repository.StaffRepository) *LedgerService {
	return &LedgerService{staffRepo: staffRepo}
}

// CommissionBalance is the derived commission state of one staff member.
// It is recomputed from sale and discount history on every call, never
// stored.
type CommissionBalance struct {
	StaffID         uuid.UUID `json:"staff_id"`
	StaffName       string    `json:"staff_name"`
	Unpaid          float64   `json:"unpaid_commission"`
	ActiveDiscounts float64   `json:"active_discounts"`
	Pending         float64   `json:"pending_commission"`
}

func balanceOf(staff *entity.StaffMember) *CommissionBalance {
	return &CommissionBalance{
		StaffID:         staff.ID,
		StaffName:       staff.Name,
		Unpaid:          float64(staff.UnpaidCommission()) / 100,
		ActiveDiscounts: float64(staff.ActiveDiscountTotal()) / 100,
		Pending:         float64(staff.PendingCommission()) / 100,
	}
}

// GetBalance returns the current commission balance of a staff member
func (s *LedgerService) GetBalance(ctx context.Context, staffID uuid.UUID) (*CommissionBalance, error) {
	staff, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.NewNotFoundError("Staff member")
	}
	return balanceOf(staff), nil
}

// ListBalances returns the commission balance of every staff member
func (s *LedgerService) ListBalances(ctx context.Context) ([]CommissionBalance, error) {
	members, err := s.staffRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	balances := make([]CommissionBalance, 0, len(members))
	for i := range members {
		balances = append(balances, *balanceOf(&members[i]))
	}
	return balances, nil
}

// AddDiscountInput represents the add staff discount input
type AddDiscountInput struct {
	Amount float64
	Reason string
	Date   time.Time
}

// AddDiscount registers a deduction against a member's pending commission
func (s *LedgerService) AddDiscount(ctx context.Context, staffID uuid.UUID, input *AddDiscountInput) (*entity.StaffDiscount, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Discount amount must be greater than zero")
	}
	if input.Reason == "" {
		return nil, apperror.NewBadRequestError("A discount reason is required")
	}

	staff, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.NewNotFoundError("Staff member")
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	discount := &entity.StaffDiscount{
		StaffID: staffID,
		Date:    date,
		Amount:  ToCents(input.Amount),
		Reason:  input.Reason,
		Status:  enum.DiscountStatusActive,
	}

	if err := s.staffRepo.AddDiscount(ctx, discount); err != nil {
		return nil, err
	}
	return discount, nil
}

// CancelDiscount cancels an active discount so it stops counting against
// the pending commission. Applied and already-cancelled discounts are
// terminal: cancelling one again is a no-op, not an error.
func (s *LedgerService) CancelDiscount(ctx context.Context, staffID, discountID uuid.UUID, reason string) (*entity.StaffDiscount, error) {
	if reason == "" {
		return nil, apperror.NewBadRequestError("A cancellation reason is required")
	}

	discount, err := s.staffRepo.GetDiscount(ctx, staffID, discountID)
	if err != nil {
		return nil, err
	}
	if discount == nil {
		return nil, apperror.NewNotFoundError("Discount")
	}
	if discount.Status.IsTerminal() {
		return discount, nil
	}

	discount.Status = enum.DiscountStatusCancelled
	discount.CancellationReason = &reason

	if err := s.staffRepo.UpdateDiscount(ctx, discount); err != nil {
		return nil, err
	}
	return discount, nil
}

// PayCommission settles a member's pending commission. In one transaction
// it marks every unpaid sale record paid, consumes every active discount,
// and records a single expense for the paid amount. When nothing is
// pending the ledger is left untouched and no expense is returned.
func (s *LedgerService) PayCommission(ctx context.Context, staffID uuid.UUID) (*entity.Expense, error) {
	staff, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.NewNotFoundError("Staff member")
	}

	unpaid := staff.UnpaidCommission()
	discounts := staff.ActiveDiscountTotal()
	pending := staff.PendingCommission()

	if pending == 0 {
		return nil, nil
	}

	expense := &entity.Expense{
		Category: entity.CommissionExpenseCategory,
		Reason:   fmt.Sprintf("Pago de comisión a %s", staff.Name),
		Amount:   pending,
		Date:     time.Now(),
		Status:   enum.ExpenseStatusActive,
		Note: fmt.Sprintf("Comisión total: %s\nDescuentos aplicados: %s",
			FormatCurrency(unpaid), FormatCurrency(discounts)),
	}

	if err := s.staffRepo.SettleCommission(ctx, staffID, expense); err != nil {
		return nil, err
	}
	return expense, nil
}
