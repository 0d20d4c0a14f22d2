// Package app wires configuration into the concrete stores and clients shared
// by the server and the seeder.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"swastik/internal/catalog"
	"swastik/internal/config"
	"swastik/internal/db"
	"swastik/internal/mongodb"
	"swastik/internal/settings"
)

// Stores are the persistence backends chosen by DB_DRIVER.
type Stores struct {
	Products  catalog.Store
	Settings  settings.Store
	Connected bool

	close func(context.Context) error
}

// Close releases the database connection, if any.
func (s Stores) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// OpenStores connects to the configured database. Missing credentials are not
// an error: the returned stores report ErrNotConnected on every call.
func OpenStores(ctx context.Context, cfg config.Database, log *zap.Logger) (Stores, error) {
	switch cfg.Driver {
	case config.DriverPostgres, config.DriverMongo, config.DriverMemory:
	default:
		return Stores{}, fmt.Errorf("unknown DB_DRIVER %q", cfg.Driver)
	}
	if !cfg.Configured() {
		log.Warn("database credentials missing, running without a database", zap.String("driver", cfg.Driver))
		return Stores{Products: catalog.Unavailable{}, Settings: settings.Unavailable{}}, nil
	}

	switch cfg.Driver {
	case config.DriverPostgres:
		gdb, err := db.Open(cfg.DSN)
		if err != nil {
			return Stores{}, err
		}
		if err := db.Migrate(gdb); err != nil {
			return Stores{}, err
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return Stores{}, fmt.Errorf("sql handle: %w", err)
		}
		log.Info("connected to postgres")
		return Stores{
			Products:  db.NewProductStore(gdb),
			Settings:  db.NewSettingsStore(gdb),
			Connected: true,
			close:     func(context.Context) error { return sqlDB.Close() },
		}, nil

	case config.DriverMongo:
		client, mdb, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return Stores{}, err
		}
		if err := mongodb.Migrate(ctx, mdb); err != nil {
			_ = client.Disconnect(ctx)
			return Stores{}, err
		}
		log.Info("connected to mongodb", zap.String("database", cfg.MongoDatabase))
		return Stores{
			Products:  mongodb.NewProductStore(mdb),
			Settings:  mongodb.NewSettingsStore(mdb),
			Connected: true,
			close:     client.Disconnect,
		}, nil

	default:
		log.Info("using in-memory store")
		return Stores{
			Products:  catalog.NewMemoryStore(),
			Settings:  settings.NewMemoryStore(),
			Connected: true,
		}, nil
	}
}
