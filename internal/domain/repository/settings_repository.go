package repository

import (
	"context"

	"github.com/studiopos/salon-api/internal/domain/entity"
)

// SettingsRepository defines the interface for receipt settings access.
// A single settings row exists; Get returns nil when none is stored yet.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.ReceiptSettings, error)
	Create(ctx context.Context, settings *entity.ReceiptSettings) error
	Update(ctx context.Context, settings *entity.ReceiptSettings) error
}
