package catalog

import (
	"context"
	"strconv"
	"sync"

	"swastik/internal/models"
)

// MemoryStore keeps products in process memory in insertion order.
// It backs DB_DRIVER=memory and the tests.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID int
	ids    []string
	items  map[string]models.Product
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: map[string]models.Product{}}
}

func (s *MemoryStore) Find(_ context.Context, f Filter) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0, len(s.ids))
	for _, id := range s.ids {
		p := s.items[id]
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.BestsellerOnly && !p.Bestseller {
			continue
		}
		out = append(out, p)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.items[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

func (s *MemoryStore) Create(_ context.Context, fields models.ProductFields) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := "p" + strconv.Itoa(s.nextID)
	s.ids = append(s.ids, id)
	s.items[id] = fields.WithID(id)
	return id, nil
}

func (s *MemoryStore) Update(_ context.Context, id string, fields models.ProductFields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	s.items[id] = fields.WithID(id)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }
