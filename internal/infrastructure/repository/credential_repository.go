package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/studiopos/salon-api/internal/domain/entity"
	domainRepo "github.com/studiopos/salon-api/internal/domain/repository"
)

type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository creates a new admin credential repository
func NewCredentialRepository(db *gorm.DB) domainRepo.CredentialRepository {
	return &credentialRepository{db: db}
}

func (r *credentialRepository) Get(ctx context.Context) (*entity.AdminCredential, error) {
	var credential entity.AdminCredential
	err := r.db.WithContext(ctx).First(&credential).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &credential, err
}

func (r *credentialRepository) Create(ctx context.Context, credential *entity.AdminCredential) error {
	return r.db.WithContext(ctx).Create(credential).Error
}

func (r *credentialRepository) Update(ctx context.Context, credential *entity.AdminCredential) error {
	return r.db.WithContext(ctx).Save(credential).Error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user account repository
func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.UserAccount) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.UserAccount, error) {
	var user entity.UserAccount
	err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) Update(ctx context.Context, user *entity.UserAccount) error {
	return r.db.WithContext(ctx).Save(user).Error
}
