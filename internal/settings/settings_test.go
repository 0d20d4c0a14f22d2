package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"swastik/internal/models"
)

func strp(s string) *string { return &s }

type failingStore struct{}

func (failingStore) Load(context.Context) (models.SettingsRecord, error) {
	return models.SettingsRecord{}, errors.New("connection reset")
}

func (failingStore) Merge(context.Context, models.SettingsRecord) error {
	return errors.New("connection reset")
}

func TestGetFallsBackToDefaults(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	svc := NewService(failingStore{}, zap.New(core))

	assert.Equal(t, Defaults, svc.Get(context.Background()))
	assert.Equal(t, 1, logs.Len())

	svc = NewService(Unavailable{}, zap.NewNop())
	assert.Equal(t, Defaults, svc.Get(context.Background()))
}

func TestSaveMergesOverExisting(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore(), zap.NewNop())

	assert.Equal(t, Defaults, svc.Get(ctx), "no record yet")

	require.NoError(t, svc.Save(ctx, models.SettingsRecord{Phone: strp("+91 99999 00000"), ShopName: strp("Swastik")}))
	require.NoError(t, svc.Save(ctx, models.SettingsRecord{Email: strp("hello@swastik.in")}))

	got := svc.Get(ctx)
	assert.Equal(t, "Swastik", got.ShopName)
	assert.Equal(t, "+91 99999 00000", got.Phone)
	assert.Equal(t, "hello@swastik.in", got.Email)
	assert.Equal(t, Defaults.Address, got.Address)
	assert.Equal(t, Defaults.MapURL, got.MapURL)

	rec, err := svc.Stored(ctx)
	require.NoError(t, err)
	assert.Nil(t, rec.Address)
}
