package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/studiopos/salon-api/internal/domain/entity"
	"github.com/studiopos/salon-api/internal/domain/repository"
	"github.com/studiopos/salon-api/pkg/apperror"
)

// StaffService handles staff member management
type StaffService struct {
	staffRepo repository.StaffRepository
}

// NewStaffService creates a new staff service
func NewStaffService(staffRepo repository.StaffRepository) *StaffService {
	return &StaffService{staffRepo: staffRepo}
}

// CreateStaffInput represents the create staff member input
type CreateStaffInput struct {
	Code           string
	Name           string
	Phone          string
	CommissionRate float64
}

// CreateStaff creates a new staff member
func (s *StaffService) CreateStaff(ctx context.Context, input *CreateStaffInput) (*entity.StaffMember, error) {
	if input.CommissionRate < 0 || input.CommissionRate > 100 {
		return nil, apperror.NewBadRequestError("Commission rate must be between 0 and 100")
	}

	existing, err := s.staffRepo.GetByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A staff member with this code already exists")
	}

	staff := &entity.StaffMember{
		Code:           input.Code,
		Name:           input.Name,
		Phone:          input.Phone,
		CommissionRate: input.CommissionRate,
	}

	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// GetStaff retrieves a staff member with full sale and discount history
func (s *StaffService) GetStaff(ctx context.Context, id uuid.UUID) (*entity.StaffMember, error) {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.NewNotFoundError("Staff member")
	}
	return staff, nil
}

// ListStaff lists all staff members
func (s *StaffService) ListStaff(ctx context.Context) ([]entity.StaffMember, error) {
	return s.staffRepo.List(ctx)
}

// UpdateStaffInput represents the update staff member input. Nil fields are
// left unchanged.
type UpdateStaffInput struct {
	Name           *string
	Phone          *string
	CommissionRate *float64
}

// UpdateStaff updates a staff member. A commission rate change applies to
// future sales only; recorded commissions keep the rate in effect at sale
// time.
func (s *StaffService) UpdateStaff(ctx context.Context, id uuid.UUID, input *UpdateStaffInput) (*entity.StaffMember, error) {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.NewNotFoundError("Staff member")
	}

	if input.Name != nil {
		staff.Name = *input.Name
	}
	if input.Phone != nil {
		staff.Phone = *input.Phone
	}
	if input.CommissionRate != nil {
		if *input.CommissionRate < 0 || *input.CommissionRate > 100 {
			return nil, apperror.NewBadRequestError("Commission rate must be between 0 and 100")
		}
		staff.CommissionRate = *input.CommissionRate
	}

	if err := s.staffRepo.Update(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// DeleteStaff removes a staff member
func (s *StaffService) DeleteStaff(ctx context.Context, id uuid.UUID) error {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if staff == nil {
		return apperror.NewNotFoundError("Staff member")
	}
	return s.staffRepo.Delete(ctx, id)
}

// ClearHistory wipes a member's sale records and discounts. The member and
// past commission expenses stay.
func (s *StaffService) ClearHistory(ctx context.Context, id uuid.UUID) error {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if staff == nil {
		return apperror.NewNotFoundError("Staff member")
	}
	return s.staffRepo.ClearHistory(ctx, id)
}
