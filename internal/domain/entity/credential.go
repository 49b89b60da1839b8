package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminCredential holds the secret that gates destructive operations
// (deleting sales, clearing staff history). A single row exists per
// installation, seeded with a default at startup and replaced through the
// settings operations. It is validated by exact string match: this is a
// local single-operator gate, not a multi-tenant security boundary.
type AdminCredential struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Secret    string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new credential
func (c *AdminCredential) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AdminCredential model
func (AdminCredential) TableName() string {
	return "admin_credentials"
}

// UserAccount represents a login account for the admin tool. The password
// is stored as a bcrypt hash; roles are "admin" or "vendor".
type UserAccount struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Username  string         `gorm:"size:100;unique;not null" json:"username"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:50;not null" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user account
func (u *UserAccount) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the UserAccount model
func (UserAccount) TableName() string {
	return "user_accounts"
}
