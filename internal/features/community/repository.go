package community

import (
	"context"

	"kisanmitra/internal/database"
	"kisanmitra/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	FindActiveByID(ctx context.Context, id string) (*Post, error)
	FindOwned(ctx context.Context, id string, userID primitive.ObjectID) (*Post, error)
	List(ctx context.Context, filter bson.M, params utils.PaginationParams) ([]Post, int64, error)
	Replace(ctx context.Context, post *Post) error
	IncrementViews(ctx context.Context, id string) (*Post, error)
}

type PostRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewPostRepository(mongodb *database.MongodbDB) PostRepository {
	return &PostRepositoryImpl{
		Collection: mongodb.DB.Collection("community_posts"),
	}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *Post) error {
	res, err := r.Collection.InsertOne(ctx, post)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		post.ID = oid
	}
	return nil
}

// FindActiveByID loads a post unless it has been soft-deleted.
func (r *PostRepositoryImpl) FindActiveByID(ctx context.Context, id string) (*Post, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var post Post
	err = r.Collection.FindOne(ctx, bson.M{
		"_id":    objectID,
		"status": bson.M{"$ne": StatusDeleted},
	}).Decode(&post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepositoryImpl) FindOwned(ctx context.Context, id string, userID primitive.ObjectID) (*Post, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var post Post
	err = r.Collection.FindOne(ctx, bson.M{
		"_id":     objectID,
		"user_id": userID,
		"status":  bson.M{"$ne": StatusDeleted},
	}).Decode(&post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns a page of posts with the comment threads projected out. The
// full thread only ships on single-post reads.
func (r *PostRepositoryImpl) List(ctx context.Context, filter bson.M, params utils.PaginationParams) ([]Post, int64, error) {
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
		SetLimit(params.Limit).
		SetProjection(bson.M{"comments": 0})

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	posts := []Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *PostRepositoryImpl) Replace(ctx context.Context, post *Post) error {
	res, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": post.ID}, post)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// IncrementViews bumps the view counter on a non-deleted post and returns the
// updated document.
func (r *PostRepositoryImpl) IncrementViews(ctx context.Context, id string) (*Post, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var post Post
	err = r.Collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID, "status": bson.M{"$ne": StatusDeleted}},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}
