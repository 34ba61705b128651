package tenants

import (
	"context"
	"pidelocal-service/internal/app/contracts"
	"pidelocal-service/internal/app/models"
	"pidelocal-service/internal/pkg/constvars"
	"pidelocal-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BusinessMongoRepository struct {
	Collection *mongo.Collection
}

func NewBusinessMongoRepository(db *mongo.Database) contracts.BusinessRepository {
	return &BusinessMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionBusinesses),
	}
}

func (repo *BusinessMongoRepository) FindBySlug(ctx context.Context, slug string) (*models.Business, error) {
	business := new(models.Business)
	err := repo.Collection.FindOne(ctx, bson.M{"slug": slug, "deletedAt": bson.M{"$exists": false}}).Decode(business)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return business, nil
}

func (repo *BusinessMongoRepository) List(ctx context.Context, page, pageSize int) ([]models.Business, int, error) {
	filter := bson.M{"deletedAt": bson.M{"$exists": false}}

	total, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "slug", Value: 1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))
	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	businesses := make([]models.Business, 0)
	if err = cursor.All(ctx, &businesses); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return businesses, int(total), nil
}

func (repo *BusinessMongoRepository) Create(ctx context.Context, business *models.Business) error {
	_, err := repo.Collection.InsertOne(ctx, business)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrTenantAlreadyExists(err, business.Slug)
		}
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *BusinessMongoRepository) UpdateOpeningHours(ctx context.Context, businessID string, openingHours map[string][]models.OpeningPeriod) error {
	return repo.set(ctx, businessID, bson.M{"openingHours": openingHours})
}

func (repo *BusinessMongoRepository) UpdateSlotSettings(ctx context.Context, businessID string, settings models.SlotSettings, timezone string) error {
	return repo.set(ctx, businessID, bson.M{"slotSettings": settings, "timezone": timezone})
}

func (repo *BusinessMongoRepository) UpdatePaymentSettings(ctx context.Context, businessID string, settings models.PaymentSettings) error {
	return repo.set(ctx, businessID, bson.M{"paymentSettings": settings})
}

func (repo *BusinessMongoRepository) set(ctx context.Context, businessID string, fields bson.M) error {
	fields["updatedAt"] = time.Now().UTC()
	result, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": businessID}, bson.M{"$set": fields})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrMongoDBUpdateDocument(mongo.ErrNoDocuments)
	}
	return nil
}
