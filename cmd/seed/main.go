// Command seed inserts the starter catalog into the configured database.
package main

import (
	"context"
	"errors"
	"log"
	"time"

	"go.uber.org/zap"

	"swastik/internal/app"
	"swastik/internal/catalog"
	"swastik/internal/config"
	"swastik/internal/logger"
	"swastik/internal/models"
)

var starter = []models.ProductFields{
	{
		Name:        "Modern 3-Seater Sofa",
		Price:       "22,500",
		Category:    "Living Room",
		Image:       "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=400&h=500&fit=crop",
		Description: "Premium comfort with durable fabric.",
		Available:   true,
	},
	{
		Name:        "Solid Wood King Bed",
		Price:       "35,000",
		Category:    "Bedroom",
		Image:       "https://images.unsplash.com/photo-1540932626318-85f1cb39b64b?w=400&h=500&fit=crop",
		Description: "Hand-carved teak wood finish.",
		Available:   true,
	},
	{
		Name:        "Wooden Dining Table Set",
		Price:       "28,000",
		Category:    "Dining",
		Image:       "https://images.unsplash.com/photo-1473093295203-cad00df16e50?w=400&h=500&fit=crop",
		Description: "6-Seater family dining set.",
		Available:   true,
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	lg, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer lg.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := seed(ctx, cfg.Database, lg); err != nil {
		lg.Fatal("seed failed", zap.Error(err))
	}
}

func seed(ctx context.Context, cfg config.Database, lg *zap.Logger) error {
	if cfg.Driver == config.DriverMemory {
		return errors.New("seeding the in-memory store has no effect")
	}
	stores, err := app.OpenStores(ctx, cfg, lg)
	if err != nil {
		return err
	}
	defer stores.Close(context.Background())
	if !stores.Connected {
		return errors.New("database credentials not configured")
	}

	return insert(ctx, catalog.NewRepository(stores.Products), lg)
}

func insert(ctx context.Context, repo *catalog.Repository, lg *zap.Logger) error {
	for _, p := range starter {
		id, err := repo.Create(ctx, p)
		if err != nil {
			return err
		}
		lg.Info("added product", zap.String("name", p.Name), zap.String("id", id))
	}
	lg.Info("seeding complete", zap.Int("count", len(starter)))
	return nil
}
