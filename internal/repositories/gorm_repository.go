package repositories

import (
	"fmt"

	"gorm.io/gorm"
)

// GORMRepository combines the GORM-backed repositories into a Repository.
type GORMRepository struct {
	*GORMUserRepository
	*GORMProductRepository
	*GORMOrderRepository
}

// NewGORMRepository creates a Repository backed by db.
func NewGORMRepository(db *gorm.DB) *GORMRepository {
	return &GORMRepository{
		GORMUserRepository:    NewGORMUserRepository(db),
		GORMProductRepository: NewGORMProductRepository(db),
		GORMOrderRepository:   NewGORMOrderRepository(db),
	}
}

// AutoMigrate creates or updates the tables used by the GORM repositories.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&userRecord{}, &productRecord{}, &orderRecord{}, &orderItemRecord{}); err != nil {
		return fmt.Errorf("failed to auto-migrate database: %w", err)
	}
	return nil
}
