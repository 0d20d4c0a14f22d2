// Package auth verifies admin identity tokens and carries the authenticated
// principal through a request.
package auth

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"swastik/internal/models"
)

var (
	ErrMissingToken = errors.New("missing ID token")
	ErrUnauthorized = errors.New("invalid credentials")
)

// TokenVerifier checks an opaque client token and returns the user id it was
// issued for.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, token string) (string, error)
}

// Gate turns a client token into an admin identity. Every verifier failure is
// reported as ErrUnauthorized; the cause only goes to the log.
type Gate struct {
	verifier TokenVerifier
	logger   *zap.Logger
}

func NewGate(verifier TokenVerifier, logger *zap.Logger) *Gate {
	return &Gate{verifier: verifier, logger: logger}
}

func (g *Gate) Login(ctx context.Context, token string) (models.Admin, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return models.Admin{}, ErrMissingToken
	}
	uid, err := g.verifier.VerifyIDToken(ctx, token)
	if err != nil || uid == "" {
		g.logger.Info("admin token rejected", zap.Error(err))
		return models.Admin{}, ErrUnauthorized
	}
	g.logger.Info("admin logged in", zap.String("uid", uid))
	return models.Admin{UID: uid}, nil
}

type principalKey struct{}

// WithPrincipal returns a context carrying the authenticated admin.
func WithPrincipal(ctx context.Context, admin models.Admin) context.Context {
	return context.WithValue(ctx, principalKey{}, admin)
}

// PrincipalFrom returns the admin stored by WithPrincipal.
func PrincipalFrom(ctx context.Context) (models.Admin, bool) {
	admin, ok := ctx.Value(principalKey{}).(models.Admin)
	return admin, ok
}
