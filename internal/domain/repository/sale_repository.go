package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/studiopos/salon-api/internal/domain/entity"
	"github.com/studiopos/salon-api/internal/domain/enum"
	"github.com/studiopos/salon-api/pkg/pagination"
)

// SaleFilterParams holds filtering options for listing sales.
type SaleFilterParams struct {
	Pagination *pagination.Params
	Status     *enum.SaleStatus
	ClientCode string
	StartDate  *time.Time
	EndDate    *time.Time
}

// SaleRecordInput bundles the side effects recorded together with a sale.
type SaleRecordInput struct {
	Sale     *entity.Sale
	Items    []entity.SaleItem
	Purchase *entity.ClientPurchase // nil when no client matched
	Staff    *entity.StaffSale      // nil when no staff referenced
	Stock    map[uuid.UUID]int      // product id -> quantity sold
}

// SaleRepository defines the interface for sale data access.
type SaleRepository interface {
	// Record performs the whole sale-recording unit in one transaction:
	// assigns the next invoice number (max over all sales, deleted included,
	// plus one), inserts the sale and its items, appends the client purchase
	// and staff sale record when present, and decrements product stock.
	Record(ctx context.Context, input *SaleRecordInput) error

	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	Cancel(ctx context.Context, id uuid.UUID, reason string) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
}
