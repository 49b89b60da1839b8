package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func newTestStaffService() (*StaffService, *fakeStaffRepo) {
	repo := newFakeStaffRepo()
	return NewStaffService(repo), repo
}

func TestCreateStaff(t *testing.T) {
	svc, _ := newTestStaffService()
	ctx := context.Background()

	staff, err := svc.CreateStaff(ctx, &CreateStaffInput{
		Code: "maria", Name: "María", CommissionRate: 10,
	})
	if err != nil {
		t.Fatalf("CreateStaff: %v", err)
	}
	if staff.ID == uuid.Nil {
		t.Fatal("staff id not assigned")
	}

	if _, err := svc.CreateStaff(ctx, &CreateStaffInput{Code: "maria", Name: "Otra"}); err == nil {
		t.Fatal("expected conflict for duplicate code")
	}
	if _, err := svc.CreateStaff(ctx, &CreateStaffInput{Code: "x", Name: "X", CommissionRate: 150}); err == nil {
		t.Fatal("expected error for rate above 100")
	}
	if _, err := svc.CreateStaff(ctx, &CreateStaffInput{Code: "y", Name: "Y", CommissionRate: -1}); err == nil {
		t.Fatal("expected error for negative rate")
	}
}

func TestUpdateStaffPartial(t *testing.T) {
	svc, _ := newTestStaffService()
	ctx := context.Background()

	staff, err := svc.CreateStaff(ctx, &CreateStaffInput{
		Code: "maria", Name: "María", Phone: "8888-0000", CommissionRate: 10,
	})
	if err != nil {
		t.Fatalf("CreateStaff: %v", err)
	}

	rate := 15.0
	updated, err := svc.UpdateStaff(ctx, staff.ID, &UpdateStaffInput{CommissionRate: &rate})
	if err != nil {
		t.Fatalf("UpdateStaff: %v", err)
	}
	if updated.CommissionRate != 15 {
		t.Fatalf("rate = %v, want 15", updated.CommissionRate)
	}
	if updated.Name != "María" || updated.Phone != "8888-0000" {
		t.Fatal("untouched fields must stay unchanged")
	}

	bad := 200.0
	if _, err := svc.UpdateStaff(ctx, staff.ID, &UpdateStaffInput{CommissionRate: &bad}); err == nil {
		t.Fatal("expected error for rate above 100")
	}
	if _, err := svc.UpdateStaff(ctx, uuid.New(), &UpdateStaffInput{CommissionRate: &rate}); err == nil {
		t.Fatal("expected error for unknown staff member")
	}
}

func TestClearHistoryKeepsMember(t *testing.T) {
	svc, repo := newTestStaffService()
	ctx := context.Background()

	staff, err := svc.CreateStaff(ctx, &CreateStaffInput{Code: "maria", Name: "María", CommissionRate: 10})
	if err != nil {
		t.Fatalf("CreateStaff: %v", err)
	}
	addSale(repo, staff.ID, 5000, false)
	addSale(repo, staff.ID, 3000, true)

	if err := svc.ClearHistory(ctx, staff.ID); err != nil {
		t.Fatalf("ClearHistory: %v", err)
	}

	loaded, err := svc.GetStaff(ctx, staff.ID)
	if err != nil {
		t.Fatalf("GetStaff: %v", err)
	}
	if len(loaded.Sales) != 0 || len(loaded.Discounts) != 0 {
		t.Fatal("history must be empty after clear")
	}
	if loaded.Name != "María" {
		t.Fatal("member itself must survive a history clear")
	}

	if err := svc.ClearHistory(ctx, uuid.New()); err == nil {
		t.Fatal("expected error for unknown staff member")
	}
}
