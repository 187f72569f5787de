package scheme

import (
	"context"

	"kisanmitra/internal/database"
	"kisanmitra/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SchemeRepository interface {
	Create(ctx context.Context, scheme *Scheme) error
	FindActiveByID(ctx context.Context, id string) (*Scheme, error)
	FindByID(ctx context.Context, id string) (*Scheme, error)
	List(ctx context.Context, filter bson.M, params utils.PaginationParams) ([]Scheme, int64, error)
	Replace(ctx context.Context, scheme *Scheme) error
}

type SchemeRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewSchemeRepository(mongodb *database.MongodbDB) SchemeRepository {
	return &SchemeRepositoryImpl{
		Collection: mongodb.DB.Collection("schemes"),
	}
}

func (r *SchemeRepositoryImpl) Create(ctx context.Context, scheme *Scheme) error {
	res, err := r.Collection.InsertOne(ctx, scheme)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		scheme.ID = oid
	}
	return nil
}

// FindActiveByID loads a scheme only if it is still published.
func (r *SchemeRepositoryImpl) FindActiveByID(ctx context.Context, id string) (*Scheme, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var scheme Scheme
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID, "is_active": true}).Decode(&scheme)
	if err != nil {
		return nil, err
	}
	return &scheme, nil
}

func (r *SchemeRepositoryImpl) FindByID(ctx context.Context, id string) (*Scheme, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var scheme Scheme
	if err := r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&scheme); err != nil {
		return nil, err
	}
	return &scheme, nil
}

func (r *SchemeRepositoryImpl) List(ctx context.Context, filter bson.M, params utils.PaginationParams) ([]Scheme, int64, error) {
	if filter == nil {
		filter = bson.M{}
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(params.SortSpec()).
		SetSkip(params.Skip()).
		SetLimit(params.Limit)

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	schemes := []Scheme{}
	if err := cursor.All(ctx, &schemes); err != nil {
		return nil, 0, err
	}

	return schemes, total, nil
}

func (r *SchemeRepositoryImpl) Replace(ctx context.Context, scheme *Scheme) error {
	res, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": scheme.ID}, scheme)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
