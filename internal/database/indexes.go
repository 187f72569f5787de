package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the query paths depend on: the unique
// email constraint, text indexes backing the search endpoints, and the
// compound indexes used by listing and alert filters.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		"users": {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		"crop_logs": {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		"marketplace_listings": {
			{Keys: bson.D{{Key: "product_name", Value: "text"}, {Key: "description", Value: "text"}}},
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "available_from", Value: -1}}},
		},
		"community_posts": {
			{Keys: bson.D{{Key: "title", Value: "text"}, {Key: "content", Value: "text"}, {Key: "tags", Value: "text"}}},
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
		"schemes": {
			{Keys: bson.D{{Key: "name", Value: "text"}, {Key: "description", Value: "text"}}},
			{Keys: bson.D{{Key: "category", Value: 1}}},
			{Keys: bson.D{{Key: "state", Value: 1}, {Key: "is_active", Value: 1}}},
		},
		"weather_alerts": {
			{Keys: bson.D{{Key: "location.state", Value: 1}, {Key: "location.district", Value: 1}, {Key: "is_active", Value: 1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
