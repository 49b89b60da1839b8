package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/studiopos/salon-api/internal/domain/entity"
)

// StaffRepository defines the interface for staff member data access.
// GetByID preloads the member's sales and discounts so ledger computations
// always see the full history.
type StaffRepository interface {
	Create(ctx context.Context, staff *entity.StaffMember) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.StaffMember, error)
	GetByCode(ctx context.Context, code string) (*entity.StaffMember, error)
	List(ctx context.Context) ([]entity.StaffMember, error)
	Update(ctx context.Context, staff *entity.StaffMember) error
	Delete(ctx context.Context, id uuid.UUID) error

	AddSaleRecord(ctx context.Context, record *entity.StaffSale) error
	AddDiscount(ctx context.Context, discount *entity.StaffDiscount) error
	GetDiscount(ctx context.Context, staffID, discountID uuid.UUID) (*entity.StaffDiscount, error)
	UpdateDiscount(ctx context.Context, discount *entity.StaffDiscount) error

	// ClearHistory removes all of the member's sale records and discounts.
	ClearHistory(ctx context.Context, staffID uuid.UUID) error

	// SettleCommission atomically marks every unpaid sale record paid, every
	// active discount applied, and inserts the expense, in one transaction.
	SettleCommission(ctx context.Context, staffID uuid.UUID, expense *entity.Expense) error
}
