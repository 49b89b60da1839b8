package repository

import (
	"context"

	"github.com/studiopos/salon-api/internal/domain/entity"
)

// CredentialRepository defines the interface for the admin gate secret.
type CredentialRepository interface {
	Get(ctx context.Context) (*entity.AdminCredential, error)
	Create(ctx context.Context, credential *entity.AdminCredential) error
	Update(ctx context.Context, credential *entity.AdminCredential) error
}

// UserRepository defines the interface for login account access.
type UserRepository interface {
	Create(ctx context.Context, user *entity.UserAccount) error
	GetByUsername(ctx context.Context, username string) (*entity.UserAccount, error)
	Update(ctx context.Context, user *entity.UserAccount) error
}
