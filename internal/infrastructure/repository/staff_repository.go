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

type staffRepository struct {
	db *gorm.DB
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *gorm.DB) domainRepo.StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) Create(ctx context.Context, staff *entity.StaffMember) error {
	return r.db.WithContext(ctx).Create(staff).Error
}

func (r *staffRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.StaffMember, error) {
	var staff entity.StaffMember
	err := r.db.WithContext(ctx).
		Preload("Sales", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC")
		}).
		Preload("Discounts", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC")
		}).
		First(&staff, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &staff, err
}

func (r *staffRepository) GetByCode(ctx context.Context, code string) (*entity.StaffMember, error) {
	var staff entity.StaffMember
	err := r.db.WithContext(ctx).
		Preload("Sales").
		Preload("Discounts").
		First(&staff, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &staff, err
}

func (r *staffRepository) List(ctx context.Context) ([]entity.StaffMember, error) {
	var members []entity.StaffMember
	err := r.db.WithContext(ctx).
		Preload("Sales").
		Preload("Discounts").
		Order("name ASC").
		Find(&members).Error
	return members, err
}

func (r *staffRepository) Update(ctx context.Context, staff *entity.StaffMember) error {
	return r.db.WithContext(ctx).Save(staff).Error
}

func (r *staffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.StaffMember{}, "id = ?", id).Error
}

func (r *staffRepository) AddSaleRecord(ctx context.Context, record *entity.StaffSale) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *staffRepository) AddDiscount(ctx context.Context, discount *entity.StaffDiscount) error {
	return r.db.WithContext(ctx).Create(discount).Error
}

func (r *staffRepository) GetDiscount(ctx context.Context, staffID, discountID uuid.UUID) (*entity.StaffDiscount, error) {
	var discount entity.StaffDiscount
	err := r.db.WithContext(ctx).
		First(&discount, "id = ? AND staff_id = ?", discountID, staffID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &discount, err
}

func (r *staffRepository) UpdateDiscount(ctx context.Context, discount *entity.StaffDiscount) error {
	return r.db.WithContext(ctx).Save(discount).Error
}

func (r *staffRepository) ClearHistory(ctx context.Context, staffID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("staff_id = ?", staffID).Delete(&entity.StaffSale{}).Error; err != nil {
			return err
		}
		return tx.Where("staff_id = ?", staffID).Delete(&entity.StaffDiscount{}).Error
	})
}

// SettleCommission flips every unpaid sale record to paid and every active
// discount to applied, then inserts the expense. All three writes commit or
// roll back together.
func (r *staffRepository) SettleCommission(ctx context.Context, staffID uuid.UUID, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.StaffSale{}).
			Where("staff_id = ? AND commission_paid = ?", staffID, false).
			Update("commission_paid", true).Error; err != nil {
			return err
		}

		if err := tx.Model(&entity.StaffDiscount{}).
			Where("staff_id = ? AND status = ?", staffID, enum.DiscountStatusActive).
			Update("status", enum.DiscountStatusApplied).Error; err != nil {
			return err
		}

		return tx.Create(expense).Error
	})
}
