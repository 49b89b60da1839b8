package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/studiopos/salon-api/internal/domain/entity"
	"github.com/studiopos/salon-api/internal/domain/enum"
	"github.com/studiopos/salon-api/internal/domain/repository"
	"github.com/studiopos/salon-api/pkg/apperror"
	"github.com/studiopos/salon-api/pkg/pagination"
)

// SaleService handles sale recording and lifecycle operations
type SaleService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	clientRepo  repository.ClientRepository
	staffRepo   repository.StaffRepository
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	staffRepo repository.StaffRepository,
) *SaleService {
	return &SaleService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		clientRepo:  clientRepo,
		staffRepo:   staffRepo,
	}
}

// SaleItemInput represents an item in a sale
type SaleItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	Price     float64 // final unit price after any per-item adjustment
}

// RecordSaleInput represents the record sale input. Commission overrides
// the rate-derived amount when set.
type RecordSaleInput struct {
	Date          time.Time
	ClientCode    string
	ClientName    string
	StaffCode     string
	Discount      float64
	Commission    *float64
	PaymentMethod enum.PaymentMethod
	Reference     string
	Items         []SaleItemInput
}

// CommissionFor computes the commission in cents earned on a sale total,
// using exact decimal arithmetic so fractional rates do not drift.
func CommissionFor(totalCents int64, ratePercent float64) int64 {
	return decimal.NewFromInt(totalCents).
		Mul(decimal.NewFromFloat(ratePercent)).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}

// RecordSale records a sale together with all of its side effects: client
// purchase history, staff commission record and stock decrements. The whole
// unit commits in one transaction; the invoice number is assigned inside it.
func (s *SaleService) RecordSale(ctx context.Context, input *RecordSaleInput) (*entity.Sale, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("A sale requires at least one item")
	}

	if input.PaymentMethod != enum.PaymentMethodCash && input.Reference == "" {
		return nil, apperror.NewBadRequestError("A reference is required for card and transfer payments")
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	// Batch fetch all products in one query (prevents N+1)
	productIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	var subtotal int64
	saleItems := make([]entity.SaleItem, 0, len(input.Items))
	lineItems := make(entity.LineItems, 0, len(input.Items))
	stockDecrements := make(map[uuid.UUID]int)

	for _, item := range input.Items {
		product, exists := productMap[item.ProductID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}
		if item.Quantity < 1 {
			return nil, apperror.NewBadRequestError("Item quantity must be at least 1")
		}

		priceCents := ToCents(item.Price)
		if item.Price == 0 {
			priceCents = product.Price
		}
		itemTotal := priceCents * int64(item.Quantity)
		subtotal += itemTotal

		saleItems = append(saleItems, entity.SaleItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  item.Quantity,
			Price:     priceCents,
			Total:     itemTotal,
		})
		lineItems = append(lineItems, entity.LineItem{
			ProductID: product.ID.String(),
			Name:      product.Name,
			Quantity:  item.Quantity,
			Price:     priceCents,
		})

		stockDecrements[product.ID] += item.Quantity
	}

	discountCents := ToCents(input.Discount)
	if discountCents < 0 {
		return nil, apperror.NewBadRequestError("Discount cannot be negative")
	}
	if discountCents > subtotal {
		return nil, apperror.NewBadRequestError("Discount cannot exceed the subtotal")
	}
	total := subtotal - discountCents

	sale := &entity.Sale{
		Date:          date,
		ClientName:    input.ClientName,
		Subtotal:      subtotal,
		Discount:      discountCents,
		Total:         total,
		PaymentMethod: input.PaymentMethod,
		Status:        enum.SaleStatusActive,
	}
	if input.Reference != "" {
		ref := input.Reference
		sale.Reference = &ref
	}

	record := &repository.SaleRecordInput{
		Sale:  sale,
		Items: saleItems,
		Stock: stockDecrements,
	}

	// Purchase history is appended only when the code matches a known
	// client; a free-form name on its own records nothing.
	if input.ClientCode != "" {
		client, err := s.clientRepo.GetByCode(ctx, input.ClientCode)
		if err != nil {
			return nil, err
		}
		if client != nil {
			code := input.ClientCode
			sale.ClientCode = &code
			if sale.ClientName == "" {
				sale.ClientName = client.Name
			}
			record.Purchase = &entity.ClientPurchase{
				ClientID: client.ID,
				Date:     date,
				Total:    total,
				Items:    lineItems,
			}
		}
	}

	if input.StaffCode != "" {
		staff, err := s.staffRepo.GetByCode(ctx, input.StaffCode)
		if err != nil {
			return nil, err
		}
		if staff == nil {
			return nil, apperror.NewNotFoundError("Staff member")
		}
		commission := CommissionFor(total, staff.CommissionRate)
		if input.Commission != nil {
			if *input.Commission < 0 {
				return nil, apperror.NewBadRequestError("Commission cannot be negative")
			}
			commission = ToCents(*input.Commission)
		}
		sale.StaffID = &staff.ID
		record.Staff = &entity.StaffSale{
			StaffID:    staff.ID,
			Date:       date,
			Total:      total,
			Commission: commission,
			Items:      lineItems,
		}
	}

	if err := s.saleRepo.Record(ctx, record); err != nil {
		return nil, err
	}

	return s.saleRepo.GetWithItems(ctx, sale.ID)
}

// GetSale retrieves a sale with its items
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales lists sales with filtering
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.Result[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.New(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewResult(sales, pag), nil
}

// CancelSale flags a sale as cancelled with a reason. Cancellation is a
// reporting state only: stock, client history and commission records stay
// exactly as the recording left them.
func (s *SaleService) CancelSale(ctx context.Context, id uuid.UUID, reason string) error {
	if reason == "" {
		return apperror.NewBadRequestError("A cancellation reason is required")
	}

	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return apperror.NewNotFoundError("Sale")
	}
	if sale.Status == enum.SaleStatusCancelled {
		return apperror.NewBadRequestError("Sale is already cancelled")
	}

	return s.saleRepo.Cancel(ctx, id, reason)
}

// DeleteSale removes a sale from listings. The invoice number stays
// consumed, so later sales keep numbering past it.
func (s *SaleService) DeleteSale(ctx context.Context, id uuid.UUID) error {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return apperror.NewNotFoundError("Sale")
	}
	return s.saleRepo.Delete(ctx, id)
}

// DeleteAllSales clears the sale history. Numbering continues from the
// highest invoice number ever assigned.
func (s *SaleService) DeleteAllSales(ctx context.Context) error {
	return s.saleRepo.DeleteAll(ctx)
}
