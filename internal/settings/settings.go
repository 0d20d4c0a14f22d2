// Package settings resolves the shop-wide contact data shown on every page.
package settings

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"swastik/internal/models"
)

// DocumentID is the key of the single record in the shop_info collection.
const DocumentID = "main"

var ErrNotConnected = errors.New("database not connected")

// Defaults is what every page shows for fields the admin never saved.
var Defaults = models.ShopSettings{
	ShopName: "Swastik Furnitures",
	Phone:    "+91 90020 66361",
	Email:    "info@swastikfurnitures.com",
	Address:  "Eastern Bypass, Siliguri, West Bengal",
	MapURL:   "https://www.google.com/maps/search/?api=1&query=Eastern+Bypass,+Siliguri,+West+Bengal",
}

// Store persists the shop_info/main record. Load returns an empty record when
// it does not exist yet; Merge writes present fields only, creating the record
// if needed.
type Store interface {
	Load(ctx context.Context) (models.SettingsRecord, error)
	Merge(ctx context.Context, patch models.SettingsRecord) error
}

type Service struct {
	store  Store
	logger *zap.Logger
}

func NewService(store Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Get returns the stored settings over Defaults. It never fails: a store
// error is logged and Defaults are returned.
func (s *Service) Get(ctx context.Context) models.ShopSettings {
	rec, err := s.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotConnected) {
			s.logger.Warn("load shop settings, using defaults", zap.Error(err))
		}
		return Defaults
	}
	return rec.Over(Defaults)
}

// Stored returns the raw record as saved by the admin.
func (s *Service) Stored(ctx context.Context) (models.SettingsRecord, error) {
	return s.store.Load(ctx)
}

func (s *Service) Save(ctx context.Context, patch models.SettingsRecord) error {
	return s.store.Merge(ctx, patch)
}

// Unavailable is the store used when no database credentials are configured.
type Unavailable struct{}

func (Unavailable) Load(context.Context) (models.SettingsRecord, error) {
	return models.SettingsRecord{}, ErrNotConnected
}

func (Unavailable) Merge(context.Context, models.SettingsRecord) error { return ErrNotConnected }

// MemoryStore keeps the record in process memory.
type MemoryStore struct {
	mu  sync.RWMutex
	rec models.SettingsRecord
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Load(context.Context) (models.SettingsRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rec, nil
}

func (s *MemoryStore) Merge(_ context.Context, patch models.SettingsRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec.Merge(patch)
	return nil
}
