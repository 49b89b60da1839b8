package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/studiopos/salon-api/internal/domain/entity"
	"github.com/studiopos/salon-api/internal/domain/enum"
	"github.com/studiopos/salon-api/pkg/apperror"
)

func newTestLedger() (*LedgerService, *fakeStaffRepo, uuid.UUID) {
	staffRepo := newFakeStaffRepo()

	staff := &entity.StaffMember{
		Code:           "maria",
		Name:           "María López",
		CommissionRate: 10,
	}
	_ = staffRepo.Create(context.Background(), staff)

	return NewLedgerService(staffRepo), staffRepo, staff.ID
}

func addSale(repo *fakeStaffRepo, staffID uuid.UUID, commission int64, paid bool) {
	_ = repo.AddSaleRecord(context.Background(), &entity.StaffSale{
		StaffID:        staffID,
		SaleID:         uuid.New(),
		Date:           time.Now(),
		Total:          commission * 10,
		Commission:     commission,
		CommissionPaid: paid,
	})
}

func TestBalanceSubtractsActiveDiscounts(t *testing.T) {
	svc, repo, staffID := newTestLedger()
	ctx := context.Background()

	addSale(repo, staffID, 10000, false)
	addSale(repo, staffID, 5000, false)
	_, err := svc.AddDiscount(ctx, staffID, &AddDiscountInput{Amount: 30, Reason: "Adelanto"})
	if err != nil {
		t.Fatalf("AddDiscount: %v", err)
	}

	balance, err := svc.GetBalance(ctx, staffID)
	if err != nil {
		t.Fatalf("GetBalance: %v", err)
	}
	if balance.Unpaid != 150 {
		t.Fatalf("unpaid = %v, want 150", balance.Unpaid)
	}
	if balance.ActiveDiscounts != 30 {
		t.Fatalf("active discounts = %v, want 30", balance.ActiveDiscounts)
	}
	if balance.Pending != 120 {
		t.Fatalf("pending = %v, want 120", balance.Pending)
	}
}

func TestBalanceFloorsAtZero(t *testing.T) {
	svc, repo, staffID := newTestLedger()
	ctx := context.Background()

	addSale(repo, staffID, 2000, false)
	if _, err := svc.AddDiscount(ctx, staffID, &AddDiscountInput{Amount: 50, Reason: "Préstamo"}); err != nil {
		t.Fatalf("AddDiscount: %v", err)
	}

	balance, err := svc.GetBalance(ctx, staffID)
	if err != nil {
		t.Fatalf("GetBalance: %v", err)
	}
	if balance.Pending != 0 {
		t.Fatalf("pending = %v, want 0", balance.Pending)
	}
}

func TestBalanceIgnoresPaidSalesAndConsumedDiscounts(t *testing.T) {
	svc, repo, staffID := newTestLedger()
	ctx := context.Background()

	addSale(repo, staffID, 10000, true)
	addSale(repo, staffID, 4000, false)
	_ = repo.AddDiscount(ctx, &entity.StaffDiscount{
		StaffID: staffID, Date: time.Now(), Amount: 1000,
		Reason: "ya aplicado", Status: enum.DiscountStatusApplied,
	})
	_ = repo.AddDiscount(ctx, &entity.StaffDiscount{
		StaffID: staffID, Date: time.Now(), Amount: 2000,
		Reason: "cancelado", Status: enum.DiscountStatusCancelled,
	})

	balance, err := svc.GetBalance(ctx, staffID)
	if err != nil {
		t.Fatalf("GetBalance: %v", err)
	}
	if balance.Unpaid != 40 {
		t.Fatalf("unpaid = %v, want 40", balance.Unpaid)
	}
	if balance.ActiveDiscounts != 0 {
		t.Fatalf("active discounts = %v, want 0", balance.ActiveDiscounts)
	}
	if balance.Pending != 40 {
		t.Fatalf("pending = %v, want 40", balance.Pending)
	}
}

func TestAddDiscountKeepsFractionalCents(t *testing.T) {
	svc, _, staffID := newTestLedger()

	discount, err := svc.AddDiscount(context.Background(), staffID, &AddDiscountInput{
		Amount: 4.35,
		Reason: "Adelanto",
	})
	if err != nil {
		t.Fatalf("AddDiscount: %v", err)
	}
	if discount.Amount != 435 {
		t.Fatalf("amount = %d cents, want 435", discount.Amount)
	}
	if got := FormatCurrency(discount.Amount); got != "C$4.35" {
		t.Fatalf("formatted amount = %q, want C$4.35", got)
	}
}

func TestAddDiscountValidation(t *testing.T) {
	svc, _, staffID := newTestLedger()
	ctx := context.Background()

	if _, err := svc.AddDiscount(ctx, staffID, &AddDiscountInput{Amount: 0, Reason: "x"}); err == nil {
		t.Fatal("expected error for zero amount")
	}
	if _, err := svc.AddDiscount(ctx, staffID, &AddDiscountInput{Amount: -5, Reason: "x"}); err == nil {
		t.Fatal("expected error for negative amount")
	}
	if _, err := svc.AddDiscount(ctx, staffID, &AddDiscountInput{Amount: 10}); err == nil {
		t.Fatal("expected error for missing reason")
	}
	if _, err := svc.AddDiscount(ctx, uuid.New(), &AddDiscountInput{Amount: 10, Reason: "x"}); err == nil {
		t.Fatal("expected error for unknown staff member")
	}
}

func TestCancelDiscount(t *testing.T) {
	svc, _, staffID := newTestLedger()
	ctx := context.Background()

	discount, err := svc.AddDiscount(ctx, staffID, &AddDiscountInput{Amount: 25, Reason: "Adelanto"})
	if err != nil {
		t.Fatalf("AddDiscount: %v", err)
	}

	cancelled, err := svc.CancelDiscount(ctx, staffID, discount.ID, "registrado por error")
	if err != nil {
		t.Fatalf("CancelDiscount: %v", err)
	}
	if cancelled.Status != enum.DiscountStatusCancelled {
		t.Fatalf("status = %v, want cancelled", cancelled.Status)
	}
	if cancelled.CancellationReason == nil || *cancelled.CancellationReason != "registrado por error" {
		t.Fatal("cancellation reason not recorded")
	}

	// Cancelling a terminal discount again is a no-op.
	again, err := svc.CancelDiscount(ctx, staffID, discount.ID, "otra vez")
	if err != nil {
		t.Fatalf("repeat cancel must be a no-op, got %v", err)
	}
	if again.Status != enum.DiscountStatusCancelled {
		t.Fatalf("status = %v, want cancelled", again.Status)
	}
	if *again.CancellationReason != "registrado por error" {
		t.Fatalf("reason = %q, repeat cancel must not overwrite it", *again.CancellationReason)
	}

	balance, err := svc.GetBalance(ctx, staffID)
	if err != nil {
		t.Fatalf("GetBalance: %v", err)
	}
	if balance.ActiveDiscounts != 0 {
		t.Fatalf("active discounts = %v, want 0 after cancel", balance.ActiveDiscounts)
	}
}

func TestCancelDiscountScopedToOwner(t *testing.T) {
	svc, repo, staffID := newTestLedger()
	ctx := context.Background()

	other := &entity.StaffMember{Code: "ana", Name: "Ana", CommissionRate: 5}
	_ = repo.Create(ctx, other)

	discount, err := svc.AddDiscount(ctx, staffID, &AddDiscountInput{Amount: 25, Reason: "Adelanto"})
	if err != nil {
		t.Fatalf("AddDiscount: %v", err)
	}

	_, err = svc.CancelDiscount(ctx, other.ID, discount.ID, "ajeno")
	if err == nil || apperror.GetAppError(err).Code != http.StatusNotFound {
		t.Fatalf("expected not found for another member's discount, got %v", err)
	}
}

func TestCancelDiscountRequiresReason(t *testing.T) {
	svc, _, staffID := newTestLedger()

	if _, err := svc.CancelDiscount(context.Background(), staffID, uuid.New(), ""); err == nil {
		t.Fatal("expected error for missing reason")
	}
}

func TestPayCommissionSettlesLedger(t *testing.T) {
	svc, repo, staffID := newTestLedger()
	ctx := context.Background()

	addSale(repo, staffID, 10000, false)
	addSale(repo, staffID, 5000, false)
	if _, err := svc.AddDiscount(ctx, staffID, &AddDiscountInput{Amount: 30, Reason: "Adelanto"}); err != nil {
		t.Fatalf("AddDiscount: %v", err)
	}

	expense, err := svc.PayCommission(ctx, staffID)
	if err != nil {
		t.Fatalf("PayCommission: %v", err)
	}
	if expense == nil {
		t.Fatal("expected an expense")
	}
	if expense.Amount != 12000 {
		t.Fatalf("expense amount = %d, want 12000", expense.Amount)
	}
	if expense.Category != entity.CommissionExpenseCategory {
		t.Fatalf("expense category = %q, want %q", expense.Category, entity.CommissionExpenseCategory)
	}
	if expense.Reason != "Pago de comisión a María López" {
		t.Fatalf("expense reason = %q", expense.Reason)
	}
	want := "Comisión total: C$150.00\nDescuentos aplicados: C$30.00"
	if expense.Note != want {
		t.Fatalf("expense note = %q, want %q", expense.Note, want)
	}
	if len(repo.settled) != 1 {
		t.Fatalf("settled expenses = %d, want 1", len(repo.settled))
	}

	// All sale records are now paid and the discount is consumed.
	balance, err := svc.GetBalance(ctx, staffID)
	if err != nil {
		t.Fatalf("GetBalance: %v", err)
	}
	if balance.Unpaid != 0 || balance.ActiveDiscounts != 0 || balance.Pending != 0 {
		t.Fatalf("balance after payment = %+v, want all zero", balance)
	}
	for _, d := range repo.discounts {
		if d.Status != enum.DiscountStatusApplied {
			t.Fatalf("discount status = %v, want applied", d.Status)
		}
	}
}

func TestPayCommissionNothingPending(t *testing.T) {
	svc, repo, staffID := newTestLedger()
	ctx := context.Background()

	expense, err := svc.PayCommission(ctx, staffID)
	if err != nil {
		t.Fatalf("PayCommission: %v", err)
	}
	if expense != nil {
		t.Fatal("expected no expense when nothing is pending")
	}
	if len(repo.settled) != 0 {
		t.Fatal("ledger must stay untouched when nothing is pending")
	}

	// Discounts at or above the unpaid total also leave nothing to pay.
	addSale(repo, staffID, 2000, false)
	if _, err := svc.AddDiscount(ctx, staffID, &AddDiscountInput{Amount: 20, Reason: "Adelanto"}); err != nil {
		t.Fatalf("AddDiscount: %v", err)
	}
	expense, err = svc.PayCommission(ctx, staffID)
	if err != nil {
		t.Fatalf("PayCommission: %v", err)
	}
	if expense != nil {
		t.Fatal("expected no expense when discounts fully offset the commission")
	}
	for _, s := range repo.sales {
		if s.CommissionPaid {
			t.Fatal("sale records must stay unpaid on a no-op payment")
		}
	}
}
