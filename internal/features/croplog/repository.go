package croplog

import (
	"context"

	"kisanmitra/internal/database"
	"kisanmitra/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Statistics aggregates a user's crop logs for the dashboard.
type Statistics struct {
	TotalLogs     int64   `json:"totalLogs"`
	ActiveLogs    int64   `json:"activeLogs"`
	HarvestedLogs int64   `json:"harvestedLogs"`
	TotalExpenses float64 `json:"totalExpenses"`
	TotalRevenue  float64 `json:"totalRevenue"`
	Profit        float64 `json:"profit"`
}

type CropLogRepository interface {
	Create(ctx context.Context, log *CropLog) error
	FindOwned(ctx context.Context, id string, userID primitive.ObjectID) (*CropLog, error)
	List(ctx context.Context, userID primitive.ObjectID, filter bson.M, params utils.PaginationParams) ([]CropLog, int64, error)
	Replace(ctx context.Context, log *CropLog) error
	Delete(ctx context.Context, id string, userID primitive.ObjectID) error
	Statistics(ctx context.Context, userID primitive.ObjectID) (*Statistics, error)
	FindAllOwned(ctx context.Context, userID primitive.ObjectID) ([]CropLog, error)
}

type CropLogRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewCropLogRepository(mongodb *database.MongodbDB) CropLogRepository {
	return &CropLogRepositoryImpl{
		Collection: mongodb.DB.Collection("crop_logs"),
	}
}

func (r *CropLogRepositoryImpl) Create(ctx context.Context, log *CropLog) error {
	res, err := r.Collection.InsertOne(ctx, log)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		log.ID = oid
	}
	return nil
}

// FindOwned scopes the lookup by owner; a non-owner's id yields
// mongo.ErrNoDocuments, indistinguishable from a missing document.
func (r *CropLogRepositoryImpl) FindOwned(ctx context.Context, id string, userID primitive.ObjectID) (*CropLog, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var log CropLog
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID, "user_id": userID}).Decode(&log)
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *CropLogRepositoryImpl) List(ctx context.Context, userID primitive.ObjectID, filter bson.M, params utils.PaginationParams) ([]CropLog, int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	filter["user_id"] = userID

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

	logs := []CropLog{}
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

func (r *CropLogRepositoryImpl) Replace(ctx context.Context, log *CropLog) error {
	_, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": log.ID, "user_id": log.UserID}, log)
	return err
}

func (r *CropLogRepositoryImpl) Delete(ctx context.Context, id string, userID primitive.ObjectID) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *CropLogRepositoryImpl) Statistics(ctx context.Context, userID primitive.ObjectID) (*Statistics, error) {
	stats := &Statistics{}

	var err error
	if stats.TotalLogs, err = r.Collection.CountDocuments(ctx, bson.M{"user_id": userID}); err != nil {
		return nil, err
	}
	if stats.ActiveLogs, err = r.Collection.CountDocuments(ctx, bson.M{
		"user_id": userID,
		"status":  bson.M{"$in": []CropStatus{StatusPlanted, StatusGrowing}},
	}); err != nil {
		return nil, err
	}
	if stats.HarvestedLogs, err = r.Collection.CountDocuments(ctx, bson.M{
		"user_id": userID,
		"status":  StatusHarvested,
	}); err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$group", Value: bson.M{
			"_id":            nil,
			"total_expenses": bson.M{"$sum": "$expenses.total"},
			"total_revenue":  bson.M{"$sum": "$revenue"},
		}}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		TotalExpenses float64 `bson:"total_expenses"`
		TotalRevenue  float64 `bson:"total_revenue"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	if len(results) > 0 {
		stats.TotalExpenses = results[0].TotalExpenses
		stats.TotalRevenue = results[0].TotalRevenue
	}
	stats.Profit = stats.TotalRevenue - stats.TotalExpenses

	return stats, nil
}

// FindAllOwned returns every log for a user, newest first. Used by the
// Excel export.
func (r *CropLogRepositoryImpl) FindAllOwned(ctx context.Context, userID primitive.ObjectID) ([]CropLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.Collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	logs := []CropLog{}
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
