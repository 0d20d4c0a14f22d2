// Package media stores product images on a remote host and releases them.
package media

import (
	"context"
	"errors"
	"io"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"swastik/internal/metrics"
)

var ErrNotConfigured = errors.New("media host not configured")

// Host is a media CDN: Upload returns a public URL, Destroy removes an asset
// by its public identifier.
type Host interface {
	Upload(ctx context.Context, r io.Reader, filename string) (string, error)
	Destroy(ctx context.Context, publicID string) error
}

// Manager wraps a Host with the release policy: deletions are best-effort and
// never fail the caller, so orphaned assets are possible.
type Manager struct {
	host   Host
	logger *zap.Logger
}

func NewManager(host Host, logger *zap.Logger) *Manager {
	return &Manager{host: host, logger: logger}
}

func (m *Manager) Upload(ctx context.Context, r io.Reader, filename string) (string, error) {
	u, err := m.host.Upload(ctx, r, filename)
	if err != nil {
		return "", err
	}
	m.logger.Info("uploaded image", zap.String("url", u))
	return u, nil
}

// Delete removes the asset, logging failures.
func (m *Manager) Delete(ctx context.Context, publicID string) {
	if err := m.host.Destroy(ctx, publicID); err != nil {
		m.logger.Warn("delete image", zap.String("public_id", publicID), zap.Error(err))
		metrics.MediaDeleteFailed()
		return
	}
	m.logger.Info("deleted image", zap.String("public_id", publicID))
}

// Release deletes the asset behind a stored URL when it belongs to the host.
// URLs pointing elsewhere are left alone.
func (m *Manager) Release(ctx context.Context, rawURL string) {
	if rawURL == "" {
		return
	}
	id, ok := ExtractIdentifier(rawURL)
	if !ok {
		return
	}
	m.Delete(ctx, id)
}

const hostDomain = "cloudinary.com"

// ExtractIdentifier derives the public id from a Cloudinary delivery URL: the
// last path segment up to its first dot.
//
//	https://res.cloudinary.com/demo/image/upload/v1570979139/sample.jpg -> sample
//
// ok is false for URLs on other hosts and for URLs that cannot be parsed.
func ExtractIdentifier(rawURL string) (id string, ok bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	host := strings.ToLower(u.Hostname())
	if host != hostDomain && !strings.HasSuffix(host, "."+hostDomain) {
		return "", false
	}
	segment := u.Path[strings.LastIndex(u.Path, "/")+1:]
	if i := strings.IndexByte(segment, '.'); i >= 0 {
		segment = segment[:i]
	}
	if segment == "" {
		return "", false
	}
	return segment, true
}

// UnconfiguredHost fails every call; it stands in when no credentials are set.
type UnconfiguredHost struct{}

func (UnconfiguredHost) Upload(context.Context, io.Reader, string) (string, error) {
	return "", ErrNotConfigured
}

func (UnconfiguredHost) Destroy(context.Context, string) error { return ErrNotConfigured }
