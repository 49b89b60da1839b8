package database

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
	"github.com/studiopos/salon-api/internal/config"
	"github.com/studiopos/salon-api/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Catalog entities
		&entity.Product{},
		&entity.Client{},
		&entity.ClientPurchase{},

		// Staff and commission entities
		&entity.StaffMember{},
		&entity.StaffSale{},
		&entity.StaffDiscount{},

		// Transaction entities
		&entity.Sale{},
		&entity.SaleItem{},
		&entity.Expense{},

		// System entities
		&entity.AdminCredential{},
		&entity.UserAccount{},
		&entity.ReceiptSettings{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with the admin gate secret, the default
// user accounts and the receipt settings singleton.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	adminSecret := viper.GetString("ADMIN_GATE_SECRET")
	if adminSecret == "" {
		adminSecret = "admin"
	}

	var existingCred entity.AdminCredential
	if err := db.First(&existingCred).Error; err != nil {
		cred := entity.AdminCredential{Secret: adminSecret}
		if err := db.Create(&cred).Error; err != nil {
			log.Printf("Warning: failed to create admin credential: %v", err)
		}
	}

	accounts := []struct {
		username string
		password string
		role     string
	}{
		{"admin", viper.GetString("ADMIN_PASSWORD"), "admin"},
		{"vendedor", viper.GetString("VENDOR_PASSWORD"), "vendor"},
	}

	for _, a := range accounts {
		if a.password == "" {
			a.password = a.username
		}

		var existing entity.UserAccount
		if err := db.Where("username = ?", a.username).First(&existing).Error; err == nil {
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Warning: failed to hash password for %s: %v", a.username, err)
			continue
		}

		account := entity.UserAccount{
			Username: a.username,
			Password: string(hashed),
			Role:     a.role,
		}
		if err := db.Create(&account).Error; err != nil {
			log.Printf("Warning: failed to create account %s: %v", a.username, err)
		} else {
			log.Printf("Default account created: %s", a.username)
		}
	}

	var existingSettings entity.ReceiptSettings
	if err := db.First(&existingSettings).Error; err != nil {
		settings := entity.DefaultReceiptSettings()
		if err := db.Create(&settings).Error; err != nil {
			log.Printf("Warning: failed to create receipt settings: %v", err)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
