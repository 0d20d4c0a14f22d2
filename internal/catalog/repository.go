package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"swastik/internal/models"
)

// BestsellersFetchLimit caps how many bestsellers are fetched before the
// availability filter runs.
const BestsellersFetchLimit = 50

// KindBestsellers is the Browse kind that selects bestseller products.
const KindBestsellers = "bestsellers"

// Repository exposes catalog queries and admin mutations over a Store.
// Operations are independent; nothing is transactional or retried.
type Repository struct {
	store Store
}

func NewRepository(store Store) *Repository {
	return &Repository{store: store}
}

func (r *Repository) ListAll(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, Filter{})
}

func (r *Repository) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return r.find(ctx, Filter{Category: category})
}

// ListBestsellers returns up to limit bestsellers in store order, minus the
// ones explicitly marked unavailable.
func (r *Repository) ListBestsellers(ctx context.Context, limit int) ([]models.Product, error) {
	items, err := r.find(ctx, Filter{BestsellerOnly: true, Limit: limit})
	if err != nil {
		return nil, err
	}
	out := make([]models.Product, 0, len(items))
	for _, p := range items {
		if p.Available {
			out = append(out, p)
		}
	}
	return out, nil
}

// Browse is the public listing: bestsellers when kind says so, otherwise the
// category when given, otherwise everything. Unavailable items are kept.
func (r *Repository) Browse(ctx context.Context, category, kind string) ([]models.Product, error) {
	switch {
	case kind == KindBestsellers:
		return r.find(ctx, Filter{BestsellerOnly: true})
	case category != "":
		return r.ListByCategory(ctx, category)
	default:
		return r.ListAll(ctx)
	}
}

// Search scans every product and keeps those whose name contains text,
// ignoring case. limit > 0 truncates the result.
func (r *Repository) Search(ctx context.Context, text string, limit int) ([]models.Product, error) {
	items, err := r.find(ctx, Filter{})
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(text)
	out := make([]models.Product, 0)
	for _, p := range items {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *Repository) Get(ctx context.Context, id string) (models.Product, error) {
	p, err := r.store.Get(ctx, id)
	if err != nil {
		return models.Product{}, wrap("get product", err)
	}
	return p, nil
}

func (r *Repository) Create(ctx context.Context, fields models.ProductFields) (string, error) {
	id, err := r.store.Create(ctx, fields)
	if err != nil {
		return "", wrap("create product", err)
	}
	return id, nil
}

// Update overwrites every writable field of the product.
func (r *Repository) Update(ctx context.Context, id string, fields models.ProductFields) error {
	return wrap("update product", r.store.Update(ctx, id, fields))
}

// Delete removes the record only; media cleanup is the caller's job.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return wrap("delete product", r.store.Delete(ctx, id))
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

func (r *Repository) find(ctx context.Context, f Filter) ([]models.Product, error) {
	items, err := r.store.Find(ctx, f)
	if err != nil {
		return nil, wrap("find products", err)
	}
	if items == nil {
		items = []models.Product{}
	}
	return items, nil
}

// wrap keeps the sentinel errors bare so callers can match and print them as is.
func wrap(op string, err error) error {
	if err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, ErrNotConnected) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
