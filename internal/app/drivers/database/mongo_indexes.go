package database

import (
	"context"
	"pidelocal-service/internal/pkg/constvars"
	"pidelocal-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var mongoIndexes = map[string][]mongo.IndexModel{
	constvars.MongoCollectionBusinesses: {
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
	},
	constvars.MongoCollectionMemberships: {
		{Keys: bson.D{{Key: "businessId", Value: 1}, {Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
	},
	constvars.MongoCollectionUsers: {
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	},
	constvars.MongoCollectionProducts: {
		{Keys: bson.D{{Key: "businessId", Value: 1}, {Key: "category", Value: 1}, {Key: "sortOrder", Value: 1}}},
	},
	constvars.MongoCollectionPromotions: {
		{Keys: bson.D{{Key: "businessId", Value: 1}, {Key: "code", Value: 1}}},
	},
	constvars.MongoCollectionOrders: {
		{Keys: bson.D{{Key: "businessId", Value: 1}, {Key: "status", Value: 1}, {Key: "pickupDate", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "paymentMethod", Value: 1}, {Key: "createdAt", Value: 1}}},
	},
}

// EnsureMongoIndexes creates the indexes every repository relies on. Existing
// indexes with the same keys are left untouched.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	for collection, models := range mongoIndexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return exceptions.ErrMongoDBCreateIndex(err, collection)
		}
	}
	return nil
}
