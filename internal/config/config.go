package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Database drivers accepted in DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

// EnvProd is the ENV value for production deployments.
const EnvProd = "prod"

// DevSessionSecret is used when SESSION_SECRET is empty so local runs do not fail.
const DevSessionSecret = "dev_fallback_secret"

type Config struct {
	Env           string `env:"ENV" env-default:"local"`
	LogLevel      string `env:"LOG_LEVEL" env-default:"info"`
	Port          string `env:"APP_PORT" env-default:"8080"`
	SessionSecret string `env:"SESSION_SECRET"`
	StaticDir     string `env:"STATIC_DIR" env-default:"./static"`
	// TrustedProxies may set X-Forwarded-For; empty trusts none.
	TrustedProxies []string `env:"TRUSTED_PROXIES" env-separator:","`

	Database   Database
	Firebase   Firebase
	Cloudinary Cloudinary
	Admin      Admin
}

// Production reports whether ENV selects the production profile.
func (c *Config) Production() bool { return c.Env == EnvProd }

type Database struct {
	Driver        string `env:"DB_DRIVER" env-default:"postgres"`
	DSN           string `env:"DB_DSN"`
	MongoURI      string `env:"MONGO_URI"`
	MongoDatabase string `env:"MONGO_DATABASE" env-default:"swastik"`
}

// Configured reports whether credentials for the selected driver are present.
func (d Database) Configured() bool {
	switch d.Driver {
	case DriverPostgres:
		return d.DSN != ""
	case DriverMongo:
		return d.MongoURI != ""
	case DriverMemory:
		return true
	}
	return false
}

type Firebase struct {
	CredentialsJSON string `env:"FIREBASE_CREDENTIALS"`
	CredentialsFile string `env:"FIREBASE_CREDENTIALS_FILE" env-default:"serviceAccountKey.json"`
}

// Credentials returns the service account JSON, preferring the environment
// over the local key file. Empty means Firebase is not configured.
func (f Firebase) Credentials() ([]byte, error) {
	if f.CredentialsJSON != "" {
		return []byte(f.CredentialsJSON), nil
	}
	if f.CredentialsFile == "" {
		return nil, nil
	}
	b, err := os.ReadFile(f.CredentialsFile)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read firebase credentials: %w", err)
	}
	return b, nil
}

type Cloudinary struct {
	CloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	APIKey    string `env:"CLOUDINARY_API_KEY"`
	APISecret string `env:"CLOUDINARY_API_SECRET"`
}

func (c Cloudinary) Configured() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

// Admin holds the optional local password login used when Firebase is absent.
type Admin struct {
	UID                string `env:"ADMIN_UID" env-default:"local-admin"`
	PasswordHash       string `env:"ADMIN_PASSWORD_HASH"`
	LoginRatePerMinute int    `env:"LOGIN_RATE_PER_MINUTE" env-default:"10"`
}

// Load reads the nearest .env file from the working directory or its parents,
// then the process environment.
func Load() (*Config, error) {
	for _, f := range []string{".env", "../.env", "../../.env"} {
		if godotenv.Overload(f) == nil {
			break
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = DevSessionSecret
	}
	return &cfg, nil
}
