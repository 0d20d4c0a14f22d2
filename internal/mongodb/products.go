package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"swastik/internal/catalog"
	"swastik/internal/models"
)

// productDoc is a products document. Ids are ObjectID hex strings.
type productDoc struct {
	ID            string `bson:"_id"`
	Name          string `bson:"name"`
	Price         string `bson:"price"`
	OriginalPrice string `bson:"original_price"`
	Category      string `bson:"category"`
	Image         string `bson:"image"`
	Description   string `bson:"description"`
	Dimensions    string `bson:"dimensions"`
	Material      string `bson:"material"`
	Bestseller    bool   `bson:"bestseller"`
	Available     *bool  `bson:"available,omitempty"`
}

func (d productDoc) toModel() models.Product {
	return models.Product{
		ID:            d.ID,
		Name:          d.Name,
		Price:         d.Price,
		OriginalPrice: d.OriginalPrice,
		Category:      d.Category,
		Image:         d.Image,
		Description:   d.Description,
		Dimensions:    d.Dimensions,
		Material:      d.Material,
		Bestseller:    d.Bestseller,
		Available:     d.Available == nil || *d.Available,
	}
}

func fieldsDoc(f models.ProductFields) bson.M {
	return bson.M{
		"name":           f.Name,
		"price":          f.Price,
		"original_price": f.OriginalPrice,
		"category":       f.Category,
		"image":          f.Image,
		"description":    f.Description,
		"dimensions":     f.Dimensions,
		"material":       f.Material,
		"bestseller":     f.Bestseller,
		"available":      f.Available,
	}
}

// ProductStore implements catalog.Store on a MongoDB collection.
type ProductStore struct {
	coll *mongo.Collection
}

func NewProductStore(db *mongo.Database) *ProductStore {
	return &ProductStore{coll: db.Collection(productsCollection)}
}

func (s *ProductStore) Find(ctx context.Context, f catalog.Filter) ([]models.Product, error) {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.BestsellerOnly {
		filter["bestseller"] = true
	}
	opts := options.Find()
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}

	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var docs []productDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]models.Product, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}

func (s *ProductStore) Get(ctx context.Context, id string) (models.Product, error) {
	var d productDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, catalog.ErrNotFound
	}
	if err != nil {
		return models.Product{}, err
	}
	return d.toModel(), nil
}

func (s *ProductStore) Create(ctx context.Context, f models.ProductFields) (string, error) {
	doc := fieldsDoc(f)
	id := primitive.NewObjectID().Hex()
	doc["_id"] = id
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return "", err
	}
	return id, nil
}

func (s *ProductStore) Update(ctx context.Context, id string, f models.ProductFields) error {
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fieldsDoc(f)})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (s *ProductStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (s *ProductStore) Ping(ctx context.Context) error {
	return s.coll.Database().Client().Ping(ctx, nil)
}
