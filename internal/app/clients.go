package app

import (
	"context"

	"go.uber.org/zap"

	"swastik/internal/auth"
	"swastik/internal/config"
	"swastik/internal/media"
)

// MediaHost returns the Cloudinary host, or a host that refuses uploads when
// Cloudinary is not configured.
func MediaHost(cfg config.Cloudinary, log *zap.Logger) (media.Host, error) {
	if !cfg.Configured() {
		log.Warn("cloudinary not configured, image uploads disabled")
		return media.UnconfiguredHost{}, nil
	}
	h, err := media.NewCloudinaryHost(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, err
	}
	log.Info("cloudinary configured", zap.String("cloud", cfg.CloudName))
	return h, nil
}

// Verifier picks the identity provider: Firebase when a service account is
// available, then the local admin password, then nothing.
func Verifier(ctx context.Context, cfg *config.Config, log *zap.Logger) (auth.TokenVerifier, error) {
	creds, err := cfg.Firebase.Credentials()
	if err != nil {
		return nil, err
	}
	if creds != nil {
		v, err := auth.NewFirebaseVerifier(ctx, creds)
		if err != nil {
			return nil, err
		}
		log.Info("firebase admin initialized")
		return v, nil
	}
	if cfg.Admin.PasswordHash != "" {
		log.Warn("firebase not configured, using local admin password", zap.String("uid", cfg.Admin.UID))
		return auth.NewPasswordVerifier(cfg.Admin.UID, cfg.Admin.PasswordHash), nil
	}
	log.Warn("no identity provider configured, admin login disabled")
	return auth.DenyVerifier{}, nil
}
