package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/studiopos/salon-api/internal/domain/entity"
)

// ClientRepository defines the interface for client data access.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	GetByCode(ctx context.Context, code string) (*entity.Client, error)
	List(ctx context.Context) ([]entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListPurchases(ctx context.Context, clientID uuid.UUID) ([]entity.ClientPurchase, error)
}
