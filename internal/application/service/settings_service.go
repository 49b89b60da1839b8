package service

import (
	"context"

	"github.com/studiopos/salon-api/internal/domain/entity"
	"github.com/studiopos/salon-api/internal/domain/repository"
	"github.com/studiopos/salon-api/pkg/apperror"
)

// SettingsService handles the receipt settings singleton
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the receipt settings, creating defaults when no row
// exists yet. The paper width is clamped on every read.
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.ReceiptSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		defaults := entity.DefaultReceiptSettings()
		if err := s.settingsRepo.Create(ctx, &defaults); err != nil {
			return nil, err
		}
		return &defaults, nil
	}
	settings.ClampWidth()
	return settings, nil
}

// UpdateSettingsInput represents the update receipt settings input. Nil
// fields are left unchanged.
type UpdateSettingsInput struct {
	PaperHeight      *int
	TitleFontSize    *int
	SubtitleFontSize *int
	BodyFontSize     *int
	BusinessName     *string
	BusinessSubtitle *string
	BusinessAddress  *string
	BusinessPhone    *string
	BusinessEmail    *string
}

// UpdateSettings updates the receipt settings. The paper width is fixed
// and cannot be changed through this operation.
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.ReceiptSettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if input.PaperHeight != nil {
		if *input.PaperHeight < 1 {
			return nil, apperror.NewBadRequestError("Paper height must be positive")
		}
		settings.PaperHeight = *input.PaperHeight
	}
	if input.TitleFontSize != nil {
		settings.TitleFontSize = *input.TitleFontSize
	}
	if input.SubtitleFontSize != nil {
		settings.SubtitleFontSize = *input.SubtitleFontSize
	}
	if input.BodyFontSize != nil {
		settings.BodyFontSize = *input.BodyFontSize
	}
	if input.BusinessName != nil {
		if *input.BusinessName == "" {
			return nil, apperror.NewBadRequestError("Business name cannot be empty")
		}
		settings.BusinessName = *input.BusinessName
	}
	if input.BusinessSubtitle != nil {
		if *input.BusinessSubtitle == "" {
			return nil, apperror.NewBadRequestError("Business subtitle cannot be empty")
		}
		settings.BusinessSubtitle = *input.BusinessSubtitle
	}
	if input.BusinessAddress != nil {
		settings.BusinessAddress = input.BusinessAddress
	}
	if input.BusinessPhone != nil {
		settings.BusinessPhone = input.BusinessPhone
	}
	if input.BusinessEmail != nil {
		settings.BusinessEmail = input.BusinessEmail
	}

	settings.ClampWidth()

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
