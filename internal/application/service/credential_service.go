package service

import (
	"context"
	"crypto/subtle"

	"github.com/studiopos/salon-api/internal/domain/entity"
	"github.com/studiopos/salon-api/internal/domain/repository"
	"github.com/studiopos/salon-api/pkg/apperror"
)

// CredentialService handles the admin gate secret that protects destructive
// operations. The secret is compared by exact match; it gates a local
// single-operator tool, not a network security boundary.
type CredentialService struct {
	credentialRepo repository.CredentialRepository
}

// NewCredentialService creates a new credential service
func NewCredentialService(credentialRepo repository.CredentialRepository) *CredentialService {
	return &CredentialService{credentialRepo: credentialRepo}
}

// Validate checks the supplied admin password against the stored secret
func (s *CredentialService) Validate(ctx context.Context, password string) error {
	credential, err := s.credentialRepo.Get(ctx)
	if err != nil {
		return err
	}
	if credential == nil {
		return apperror.NewNotFoundError("Admin credential")
	}

	if subtle.ConstantTimeCompare([]byte(credential.Secret), []byte(password)) != 1 {
		return apperror.ErrInvalidAdminPassword
	}
	return nil
}

// Set replaces the admin gate secret after validating the current one
func (s *CredentialService) Set(ctx context.Context, current, next string) error {
	if len(next) < 6 {
		return apperror.NewBadRequestError("Admin password must be at least 6 characters")
	}

	credential, err := s.credentialRepo.Get(ctx)
	if err != nil {
		return err
	}
	if credential == nil {
		credential = &entity.AdminCredential{Secret: next}
		return s.credentialRepo.Create(ctx, credential)
	}

	if subtle.ConstantTimeCompare([]byte(credential.Secret), []byte(current)) != 1 {
		return apperror.ErrInvalidAdminPassword
	}

	credential.Secret = next
	return s.credentialRepo.Update(ctx, credential)
}
