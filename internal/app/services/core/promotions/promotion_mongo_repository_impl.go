package promotions

import (
	"context"
	"pidelocal-service/internal/app/contracts"
	"pidelocal-service/internal/app/models"
	"pidelocal-service/internal/pkg/constvars"
	"pidelocal-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PromotionMongoRepository struct {
	Collection *mongo.Collection
}

func NewPromotionMongoRepository(db *mongo.Database) contracts.PromotionRepository {
	return &PromotionMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionPromotions),
	}
}

func (repo *PromotionMongoRepository) ListByBusiness(ctx context.Context, businessID string, activeOnly bool) ([]models.Promotion, error) {
	filter := bson.M{"businessId": businessID}
	if activeOnly {
		filter["active"] = true
	}

	cursor, err := repo.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	promotions := make([]models.Promotion, 0)
	if err = cursor.All(ctx, &promotions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return promotions, nil
}

func (repo *PromotionMongoRepository) FindByID(ctx context.Context, businessID, promotionID string) (*models.Promotion, error) {
	return repo.findOne(ctx, bson.M{"_id": promotionID, "businessId": businessID})
}

func (repo *PromotionMongoRepository) FindByCode(ctx context.Context, businessID, code string) (*models.Promotion, error) {
	return repo.findOne(ctx, bson.M{"businessId": businessID, "code": code})
}

func (repo *PromotionMongoRepository) Create(ctx context.Context, promotion *models.Promotion) error {
	_, err := repo.Collection.InsertOne(ctx, promotion)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *PromotionMongoRepository) Update(ctx context.Context, promotion *models.Promotion) error {
	filter := bson.M{"_id": promotion.ID, "businessId": promotion.BusinessID}
	_, err := repo.Collection.ReplaceOne(ctx, filter, promotion)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *PromotionMongoRepository) Delete(ctx context.Context, businessID, promotionID string) (bool, error) {
	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": promotionID, "businessId": businessID})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}

func (repo *PromotionMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Promotion, error) {
	promotion := new(models.Promotion)
	err := repo.Collection.FindOne(ctx, filter).Decode(promotion)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return promotion, nil
}
