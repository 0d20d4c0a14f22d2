package db

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"swastik/internal/models"
	"swastik/internal/settings"
)

// settingsRow is the single shop_info row keyed "main". NULL columns are
// fields the admin never saved.
type settingsRow struct {
	Base
	ShopName *string
	ShopLogo *string
	Phone    *string
	Email    *string
	Address  *string
	MapURL   *string `gorm:"column:map_url"`
}

func (settingsRow) TableName() string { return "shop_info" }

// SettingsStore implements settings.Store on postgres.
type SettingsStore struct {
	db *gorm.DB
}

func NewSettingsStore(db *gorm.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

func (s *SettingsStore) Load(ctx context.Context) (models.SettingsRecord, error) {
	var row settingsRow
	err := s.db.WithContext(ctx).First(&row, "id = ?", settings.DocumentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.SettingsRecord{}, nil
	}
	if err != nil {
		return models.SettingsRecord{}, err
	}
	return models.SettingsRecord{
		ShopName: row.ShopName,
		ShopLogo: row.ShopLogo,
		Phone:    row.Phone,
		Email:    row.Email,
		Address:  row.Address,
		MapURL:   row.MapURL,
	}, nil
}

// Merge upserts the row, overwriting only the columns present in patch.
func (s *SettingsStore) Merge(ctx context.Context, patch models.SettingsRecord) error {
	row := settingsRow{
		Base:     Base{ID: settings.DocumentID},
		ShopName: patch.ShopName,
		ShopLogo: patch.ShopLogo,
		Phone:    patch.Phone,
		Email:    patch.Email,
		Address:  patch.Address,
		MapURL:   patch.MapURL,
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(presentColumns(patch)),
	}).Create(&row).Error
}

func presentColumns(p models.SettingsRecord) []string {
	cols := []string{"updated_at"}
	for name, v := range map[string]*string{
		"shop_name": p.ShopName,
		"shop_logo": p.ShopLogo,
		"phone":     p.Phone,
		"email":     p.Email,
		"address":   p.Address,
		"map_url":   p.MapURL,
	} {
		if v != nil {
			cols = append(cols, name)
		}
	}
	return cols
}
