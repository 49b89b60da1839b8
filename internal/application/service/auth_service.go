package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/studiopos/salon-api/internal/domain/entity"
	"github.com/studiopos/salon-api/internal/domain/repository"
	"github.com/studiopos/salon-api/pkg/apperror"
	"github.com/studiopos/salon-api/pkg/utils"
)

// AuthService handles login and password management for the tool's accounts
type AuthService struct {
	userRepo   repository.UserRepository
	credential *CredentialService
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, credential *CredentialService, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		credential: credential,
		jwtManager: jwtManager,
	}
}

// LoginResult represents a successful login
type LoginResult struct {
	Token string              `json:"token"`
	User  *entity.UserAccount `json:"user"`
}

// Login authenticates an account and returns an access token
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateAccessToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: user}, nil
}

// ChangePassword replaces an account's password. The new password must be
// confirmed and at least 6 characters. Changing the admin account's
// password also rotates the admin gate secret so both stay in step.
func (s *AuthService) ChangePassword(ctx context.Context, username, current, next, confirm string) error {
	if next != confirm {
		return apperror.NewBadRequestError("Password confirmation does not match")
	}
	if len(next) < 6 {
		return apperror.NewBadRequestError("Password must be at least 6 characters")
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("Account")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return apperror.ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)

	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	if user.Role == "admin" {
		credential, err := s.credential.credentialRepo.Get(ctx)
		if err != nil {
			return err
		}
		if credential == nil {
			return s.credential.credentialRepo.Create(ctx, &entity.AdminCredential{Secret: next})
		}
		credential.Secret = next
		return s.credential.credentialRepo.Update(ctx, credential)
	}

	return nil
}
