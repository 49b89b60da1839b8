package entity

import (
	"testing"

	"github.com/studiopos/salon-api/internal/domain/enum"
)

func TestPendingCommission(t *testing.T) {
	staff := &StaffMember{
		Sales: []StaffSale{
			{Commission: 10000, CommissionPaid: false},
			{Commission: 5000, CommissionPaid: false},
			{Commission: 7000, CommissionPaid: true},
		},
		Discounts: []StaffDiscount{
			{Amount: 3000, Status: enum.DiscountStatusActive},
			{Amount: 2000, Status: enum.DiscountStatusApplied},
			{Amount: 4000, Status: enum.DiscountStatusCancelled},
		},
	}

	if got := staff.UnpaidCommission(); got != 15000 {
		t.Fatalf("UnpaidCommission = %d, want 15000", got)
	}
	if got := staff.ActiveDiscountTotal(); got != 3000 {
		t.Fatalf("ActiveDiscountTotal = %d, want 3000", got)
	}
	if got := staff.PendingCommission(); got != 12000 {
		t.Fatalf("PendingCommission = %d, want 12000", got)
	}
}

func TestPendingCommissionFloorsAtZero(t *testing.T) {
	staff := &StaffMember{
		Sales: []StaffSale{
			{Commission: 2000, CommissionPaid: false},
		},
		Discounts: []StaffDiscount{
			{Amount: 5000, Status: enum.DiscountStatusActive},
		},
	}

	if got := staff.PendingCommission(); got != 0 {
		t.Fatalf("PendingCommission = %d, want 0", got)
	}
}

func TestPendingCommissionEmptyHistory(t *testing.T) {
	staff := &StaffMember{}
	if got := staff.PendingCommission(); got != 0 {
		t.Fatalf("PendingCommission = %d, want 0", got)
	}
}
