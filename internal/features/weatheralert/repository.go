package weatheralert

import (
	"context"
	"sort"
	"time"

	"kisanmitra/internal/database"
	"kisanmitra/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AlertRepository interface {
	Create(ctx context.Context, alert *WeatherAlert) error
	FindByID(ctx context.Context, id string) (*WeatherAlert, error)
	List(ctx context.Context, filter bson.M, params utils.PaginationParams) ([]WeatherAlert, int64, error)
	ForLocation(ctx context.Context, state, district string) ([]WeatherAlert, error)
	DeactivateExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

type AlertRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewAlertRepository(mongodb *database.MongodbDB) AlertRepository {
	return &AlertRepositoryImpl{
		Collection: mongodb.DB.Collection("weather_alerts"),
	}
}

func (r *AlertRepositoryImpl) Create(ctx context.Context, alert *WeatherAlert) error {
	res, err := r.Collection.InsertOne(ctx, alert)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		alert.ID = oid
	}
	return nil
}

func (r *AlertRepositoryImpl) FindByID(ctx context.Context, id string) (*WeatherAlert, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var alert WeatherAlert
	if err := r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&alert); err != nil {
		return nil, err
	}
	return &alert, nil
}

func (r *AlertRepositoryImpl) List(ctx context.Context, filter bson.M, params utils.PaginationParams) ([]WeatherAlert, int64, error) {
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

	alerts := []WeatherAlert{}
	if err := cursor.All(ctx, &alerts); err != nil {
		return nil, 0, err
	}

	return alerts, total, nil
}

// ForLocation returns the current advisories for a state, including
// district-scoped ones matching the given district and state-wide ones with
// no district. Severity ordering is resolved in memory because the levels do
// not sort lexically.
func (r *AlertRepositoryImpl) ForLocation(ctx context.Context, state, district string) ([]WeatherAlert, error) {
	now := time.Now()
	filter := bson.M{
		"is_active":      true,
		"location.state": state,
		"end_date":       bson.M{"$gte": now},
	}
	if district != "" {
		filter["$or"] = []bson.M{
			{"location.district": district},
			{"location.district": bson.M{"$in": []interface{}{nil, ""}}},
		}
	}

	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	alerts := []WeatherAlert{}
	if err := cursor.All(ctx, &alerts); err != nil {
		return nil, err
	}

	sort.Slice(alerts, func(i, j int) bool {
		if severityRank[alerts[i].Severity] != severityRank[alerts[j].Severity] {
			return severityRank[alerts[i].Severity] > severityRank[alerts[j].Severity]
		}
		return alerts[i].StartDate.After(alerts[j].StartDate)
	})

	if len(alerts) > 10 {
		alerts = alerts[:10]
	}
	return alerts, nil
}

// DeactivateExpired flips still-active alerts whose window closed before the
// cutoff. Used by the scheduled sweep.
func (r *AlertRepositoryImpl) DeactivateExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.Collection.UpdateMany(ctx,
		bson.M{"is_active": true, "end_date": bson.M{"$lt": cutoff}},
		bson.M{"$set": bson.M{"is_active": false, "updated_at": cutoff}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
