package auth

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"swastik/internal/models"
)

// FirebaseVerifier checks Firebase ID tokens with the Admin SDK.
type FirebaseVerifier struct {
	client *fbauth.Client
}

func NewFirebaseVerifier(ctx context.Context, credentialsJSON []byte) (*FirebaseVerifier, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth client: %w", err)
	}
	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) VerifyIDToken(ctx context.Context, token string) (string, error) {
	t, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}
	return t.UID, nil
}

// PasswordVerifier accepts the configured admin password in place of an ID
// token. It is meant for local setups without a Firebase project.
type PasswordVerifier struct {
	uid  string
	hash string
}

func NewPasswordVerifier(uid, hash string) *PasswordVerifier {
	return &PasswordVerifier{uid: uid, hash: hash}
}

func (v *PasswordVerifier) VerifyIDToken(_ context.Context, token string) (string, error) {
	if !models.CheckPassword(v.hash, token) {
		return "", errors.New("password mismatch")
	}
	return v.uid, nil
}

// DenyVerifier rejects everything.
type DenyVerifier struct{}

func (DenyVerifier) VerifyIDToken(context.Context, string) (string, error) {
	return "", errors.New("no identity provider configured")
}
