package marketplace

import (
	"context"
	"time"

	"kisanmitra/internal/database"
	"kisanmitra/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *Listing) error
	FindByID(ctx context.Context, id string) (*Listing, error)
	FindOwned(ctx context.Context, id string, sellerID primitive.ObjectID) (*Listing, error)
	List(ctx context.Context, filter bson.M, params utils.PaginationParams) ([]Listing, int64, error)
	Replace(ctx context.Context, listing *Listing) error
	Delete(ctx context.Context, id string, sellerID primitive.ObjectID) error
	IncrementViews(ctx context.Context, id string) (*Listing, error)
	IncrementInquiries(ctx context.Context, id string) error
	ExpireBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type ListingRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewListingRepository(mongodb *database.MongodbDB) ListingRepository {
	return &ListingRepositoryImpl{
		Collection: mongodb.DB.Collection("marketplace_listings"),
	}
}

func (r *ListingRepositoryImpl) Create(ctx context.Context, listing *Listing) error {
	res, err := r.Collection.InsertOne(ctx, listing)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		listing.ID = oid
	}
	return nil
}

func (r *ListingRepositoryImpl) FindByID(ctx context.Context, id string) (*Listing, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var listing Listing
	if err := r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *ListingRepositoryImpl) FindOwned(ctx context.Context, id string, sellerID primitive.ObjectID) (*Listing, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var listing Listing
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID, "seller_id": sellerID}).Decode(&listing)
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *ListingRepositoryImpl) List(ctx context.Context, filter bson.M, params utils.PaginationParams) ([]Listing, int64, error) {
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

	listings := []Listing{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, 0, err
	}

	return listings, total, nil
}

func (r *ListingRepositoryImpl) Replace(ctx context.Context, listing *Listing) error {
	_, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": listing.ID, "seller_id": listing.SellerID}, listing)
	return err
}

func (r *ListingRepositoryImpl) Delete(ctx context.Context, id string, sellerID primitive.ObjectID) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID, "seller_id": sellerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// IncrementViews bumps the view counter and returns the updated listing.
func (r *ListingRepositoryImpl) IncrementViews(ctx context.Context, id string) (*Listing, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var listing Listing
	err = r.Collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&listing)
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *ListingRepositoryImpl) IncrementInquiries(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	res, err := r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$inc": bson.M{"inquiries": 1}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ExpireBefore flips still-active listings whose availability window closed
// before the cutoff to expired. Used by the scheduled sweep.
func (r *ListingRepositoryImpl) ExpireBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.Collection.UpdateMany(ctx,
		bson.M{
			"status":          StatusActive,
			"available_until": bson.M{"$ne": nil, "$lt": cutoff},
		},
		bson.M{"$set": bson.M{"status": StatusExpired, "updated_at": cutoff}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
