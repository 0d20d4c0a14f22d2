package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to postgres with the DSN from DB_DSN.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	return db, nil
}

// Migrate creates the products and shop_info tables and back-fills the
// available flag on rows written before it existed.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&productRow{}, &settingsRow{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	if err := db.Model(&productRow{}).
		Where("available IS NULL").
		Update("available", true).Error; err != nil {
		return fmt.Errorf("backfill available: %w", err)
	}
	return nil
}
