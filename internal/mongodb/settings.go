package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"swastik/internal/models"
	"swastik/internal/settings"
)

type settingsDoc struct {
	ShopName *string `bson:"shop_name,omitempty"`
	ShopLogo *string `bson:"shop_logo,omitempty"`
	Phone    *string `bson:"phone,omitempty"`
	Email    *string `bson:"email,omitempty"`
	Address  *string `bson:"address,omitempty"`
	MapURL   *string `bson:"map_url,omitempty"`
}

// SettingsStore implements settings.Store on the shop_info collection.
type SettingsStore struct {
	coll *mongo.Collection
}

func NewSettingsStore(db *mongo.Database) *SettingsStore {
	return &SettingsStore{coll: db.Collection(settingsCollection)}
}

func (s *SettingsStore) Load(ctx context.Context) (models.SettingsRecord, error) {
	var d settingsDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": settings.DocumentID}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.SettingsRecord{}, nil
	}
	if err != nil {
		return models.SettingsRecord{}, err
	}
	return models.SettingsRecord(d), nil
}

// Merge upserts the document with $set on the present fields only.
func (s *SettingsStore) Merge(ctx context.Context, patch models.SettingsRecord) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	for name, v := range map[string]*string{
		"shop_name": patch.ShopName,
		"shop_logo": patch.ShopLogo,
		"phone":     patch.Phone,
		"email":     patch.Email,
		"address":   patch.Address,
		"map_url":   patch.MapURL,
	} {
		if v != nil {
			set[name] = *v
		}
	}
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": settings.DocumentID},
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)
	return err
}
