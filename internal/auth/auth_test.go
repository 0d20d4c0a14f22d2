package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"swastik/internal/models"
)

type stubVerifier map[string]string

func (s stubVerifier) VerifyIDToken(_ context.Context, token string) (string, error) {
	if uid, ok := s[token]; ok {
		return uid, nil
	}
	return "", errors.New("token expired")
}

func TestGateLogin(t *testing.T) {
	gate := NewGate(stubVerifier{"good": "uid-1", "blank": ""}, zap.NewNop())
	ctx := context.Background()

	admin, err := gate.Login(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", admin.UID)

	_, err = gate.Login(ctx, "  ")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = gate.Login(ctx, "expired")
	assert.Equal(t, ErrUnauthorized, err, "provider cause must not leak")

	_, err = gate.Login(ctx, "blank")
	assert.Equal(t, ErrUnauthorized, err)

	_, err = NewGate(DenyVerifier{}, zap.NewNop()).Login(ctx, "anything")
	assert.Equal(t, ErrUnauthorized, err)
}

func TestPasswordVerifier(t *testing.T) {
	hash, err := models.HashPassword("teak")
	require.NoError(t, err)
	v := NewPasswordVerifier("local-admin", hash)

	uid, err := v.VerifyIDToken(context.Background(), "teak")
	require.NoError(t, err)
	assert.Equal(t, "local-admin", uid)

	_, err = v.VerifyIDToken(context.Background(), "oak")
	assert.Error(t, err)
}

func TestPrincipalContext(t *testing.T) {
	_, ok := PrincipalFrom(context.Background())
	assert.False(t, ok)

	ctx := WithPrincipal(context.Background(), models.Admin{UID: "uid-9"})
	admin, ok := PrincipalFrom(ctx)
	require.True(t, ok)
	assert.Equal(t, "uid-9", admin.UID)
}
