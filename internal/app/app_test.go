package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"swastik/internal/auth"
	"swastik/internal/catalog"
	"swastik/internal/config"
	"swastik/internal/media"
	"swastik/internal/models"
	"swastik/internal/settings"
)

func TestOpenStores(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	s, err := OpenStores(ctx, config.Database{Driver: config.DriverPostgres}, log)
	require.NoError(t, err)
	assert.False(t, s.Connected)
	assert.ErrorIs(t, s.Products.Ping(ctx), catalog.ErrNotConnected)
	_, err = s.Settings.Load(ctx)
	assert.ErrorIs(t, err, settings.ErrNotConnected)
	assert.NoError(t, s.Close(ctx))

	s, err = OpenStores(ctx, config.Database{Driver: config.DriverMemory}, log)
	require.NoError(t, err)
	assert.True(t, s.Connected)
	assert.IsType(t, &catalog.MemoryStore{}, s.Products)

	_, err = OpenStores(ctx, config.Database{Driver: "sqlite"}, log)
	assert.ErrorContains(t, err, `unknown DB_DRIVER "sqlite"`)
}

func TestVerifier(t *testing.T) {
	ctx := context.Background()
	t.Chdir(t.TempDir())

	cfg := &config.Config{Firebase: config.Firebase{CredentialsFile: "serviceAccountKey.json"}}
	v, err := Verifier(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, auth.DenyVerifier{}, v)

	hash, err := models.HashPassword("s3cret")
	require.NoError(t, err)
	cfg.Admin = config.Admin{UID: "owner", PasswordHash: hash}
	v, err = Verifier(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	uid, err := v.VerifyIDToken(ctx, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "owner", uid)
}

func TestMediaHost(t *testing.T) {
	h, err := MediaHost(config.Cloudinary{CloudName: "demo"}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, media.UnconfiguredHost{}, h)
}
