package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"swastik/internal/catalog"
	"swastik/internal/models"
)

// productRow is the products table. Available is nullable so rows that
// predate the column read back as available.
type productRow struct {
	Base
	Name          string
	Price         string
	OriginalPrice string
	Category      string `gorm:"index"`
	Image         string
	Description   string `gorm:"type:text"`
	Dimensions    string
	Material      string
	Bestseller    bool  `gorm:"index;not null;default:false"`
	Available     *bool `gorm:"default:true"`
}

func (productRow) TableName() string { return "products" }

func (r productRow) toModel() models.Product {
	available := r.Available == nil || *r.Available
	return models.Product{
		ID:            r.ID,
		Name:          r.Name,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Category:      r.Category,
		Image:         r.Image,
		Description:   r.Description,
		Dimensions:    r.Dimensions,
		Material:      r.Material,
		Bestseller:    r.Bestseller,
		Available:     available,
	}
}

// columns lists every writable column; Update writes all of them, zero
// values included.
func columns(f models.ProductFields) map[string]any {
	return map[string]any{
		"name":           f.Name,
		"price":          f.Price,
		"original_price": f.OriginalPrice,
		"category":       f.Category,
		"image":          f.Image,
		"description":    f.Description,
		"dimensions":     f.Dimensions,
		"material":       f.Material,
		"bestseller":     f.Bestseller,
		"available":      f.Available,
	}
}

// ProductStore implements catalog.Store on postgres.
type ProductStore struct {
	db *gorm.DB
}

func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

func (s *ProductStore) Find(ctx context.Context, f catalog.Filter) ([]models.Product, error) {
	q := s.db.WithContext(ctx).Model(&productRow{}).Order("created_at")
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.BestsellerOnly {
		q = q.Where("bestseller = ?", true)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	var rows []productRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]models.Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out, nil
}

func (s *ProductStore) Get(ctx context.Context, id string) (models.Product, error) {
	var row productRow
	err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, catalog.ErrNotFound
	}
	if err != nil {
		return models.Product{}, err
	}
	return row.toModel(), nil
}

func (s *ProductStore) Create(ctx context.Context, f models.ProductFields) (string, error) {
	available := f.Available
	row := productRow{
		Base:          Base{ID: uuid.NewString()},
		Name:          f.Name,
		Price:         f.Price,
		OriginalPrice: f.OriginalPrice,
		Category:      f.Category,
		Image:         f.Image,
		Description:   f.Description,
		Dimensions:    f.Dimensions,
		Material:      f.Material,
		Bestseller:    f.Bestseller,
		Available:     &available,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", err
	}
	return row.ID, nil
}

func (s *ProductStore) Update(ctx context.Context, id string, f models.ProductFields) error {
	res := s.db.WithContext(ctx).Model(&productRow{}).Where("id = ?", id).Updates(columns(f))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (s *ProductStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&productRow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (s *ProductStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
