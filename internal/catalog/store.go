// Package catalog holds the product repository and the storage contract its
// backends implement.
package catalog

import (
	"context"
	"errors"

	"swastik/internal/models"
)

var (
	ErrNotFound     = errors.New("product not found")
	ErrNotConnected = errors.New("database not connected")
)

// Filter is an equality query against the products collection.
// Zero values match everything; Limit <= 0 means no limit.
type Filter struct {
	Category       string
	BestsellerOnly bool
	Limit          int
}

// Store is a products collection in a document database.
type Store interface {
	Find(ctx context.Context, f Filter) ([]models.Product, error)
	Get(ctx context.Context, id string) (models.Product, error)
	Create(ctx context.Context, fields models.ProductFields) (string, error)
	Update(ctx context.Context, id string, fields models.ProductFields) error
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// Unavailable is the store used when no database credentials are configured.
type Unavailable struct{}

func (Unavailable) Find(context.Context, Filter) ([]models.Product, error) {
	return nil, ErrNotConnected
}

func (Unavailable) Get(context.Context, string) (models.Product, error) {
	return models.Product{}, ErrNotConnected
}

func (Unavailable) Create(context.Context, models.ProductFields) (string, error) {
	return "", ErrNotConnected
}

func (Unavailable) Update(context.Context, string, models.ProductFields) error {
	return ErrNotConnected
}

func (Unavailable) Delete(context.Context, string) error { return ErrNotConnected }

func (Unavailable) Ping(context.Context) error { return ErrNotConnected }
