package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/studiopos/salon-api/internal/domain/entity"
	"github.com/studiopos/salon-api/internal/domain/enum"
	domainRepo "github.com/studiopos/salon-api/internal/domain/repository"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

// Record inserts the sale and all of its side effects in one transaction.
// The invoice number is assigned inside the transaction as the maximum over
// all sales ever recorded, deleted included, plus one, so numbers are never
// reused even after deletions.
func (r *saleRepository) Record(ctx context.Context, input *domainRepo.SaleRecordInput) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxInvoice int64
		if err := tx.Unscoped().Model(&entity.Sale{}).
			Select("COALESCE(MAX(invoice_number), 0)").
			Scan(&maxInvoice).Error; err != nil {
			return err
		}
		input.Sale.InvoiceNumber = int(maxInvoice) + 1

		if err := tx.Create(input.Sale).Error; err != nil {
			return err
		}

		for i := range input.Items {
			input.Items[i].SaleID = input.Sale.ID
		}
		if len(input.Items) > 0 {
			if err := tx.Create(&input.Items).Error; err != nil {
				return err
			}
		}

		if input.Purchase != nil {
			input.Purchase.SaleID = input.Sale.ID
			if err := tx.Create(input.Purchase).Error; err != nil {
				return err
			}
		}

		if input.Staff != nil {
			input.Staff.SaleID = input.Sale.ID
			if err := tx.Create(input.Staff).Error; err != nil {
				return err
			}
		}

		// Stock may go negative; the catalog tolerates overselling.
		for productID, qty := range input.Stock {
			if err := tx.Model(&entity.Product{}).
				Where("id = ?", productID).
				Update("quantity", gorm.Expr("quantity - ?", qty)).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Staff").
		First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sale{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.ClientCode != "" {
		query = query.Where("client_code = ?", params.ClientCode)
	}

	if params.StartDate != nil {
		query = query.Where("date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order("invoice_number DESC").
		Find(&sales).Error

	return sales, total, err
}

// Cancel flags the sale as cancelled. Stock, client history and staff
// commission records are deliberately left untouched.
func (r *saleRepository) Cancel(ctx context.Context, id uuid.UUID, reason string) error {
	return r.db.WithContext(ctx).Model(&entity.Sale{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":              enum.SaleStatusCancelled,
			"cancellation_reason": reason,
		}).Error
}

func (r *saleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Sale{}, "id = ?", id).Error
}

func (r *saleRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&entity.Sale{}).Error
}
