package products

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

type ProductMongoRepository struct {
	Collection *mongo.Collection
}

func NewProductMongoRepository(db *mongo.Database) contracts.ProductRepository {
	return &ProductMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionProducts),
	}
}

func notDeleted(filter bson.M) bson.M {
	filter["deletedAt"] = bson.M{"$exists": false}
	return filter
}

func (repo *ProductMongoRepository) ListByBusiness(ctx context.Context, businessID string, activeOnly bool) ([]models.Product, error) {
	filter := notDeleted(bson.M{"businessId": businessID})
	if activeOnly {
		filter["active"] = true
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "sortOrder", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	products := make([]models.Product, 0)
	if err = cursor.All(ctx, &products); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return products, nil
}

func (repo *ProductMongoRepository) FindByID(ctx context.Context, businessID, productID string) (*models.Product, error) {
	product := new(models.Product)
	err := repo.Collection.FindOne(ctx, notDeleted(bson.M{"_id": productID, "businessId": businessID})).Decode(product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return product, nil
}

func (repo *ProductMongoRepository) FindByIDs(ctx context.Context, businessID string, productIDs []string) ([]models.Product, error) {
	filter := notDeleted(bson.M{"businessId": businessID, "_id": bson.M{"$in": productIDs}})
	cursor, err := repo.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	products := make([]models.Product, 0, len(productIDs))
	if err = cursor.All(ctx, &products); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return products, nil
}

func (repo *ProductMongoRepository) Create(ctx context.Context, product *models.Product) error {
	_, err := repo.Collection.InsertOne(ctx, product)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *ProductMongoRepository) Update(ctx context.Context, product *models.Product) error {
	filter := notDeleted(bson.M{"_id": product.ID, "businessId": product.BusinessID})
	_, err := repo.Collection.ReplaceOne(ctx, filter, product)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *ProductMongoRepository) SoftDelete(ctx context.Context, businessID, productID string) (bool, error) {
	now := time.Now().UTC()
	result, err := repo.Collection.UpdateOne(ctx,
		notDeleted(bson.M{"_id": productID, "businessId": businessID}),
		bson.M{"$set": bson.M{"deletedAt": now, "updatedAt": now, "active": false}},
	)
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.ModifiedCount > 0, nil
}

func (repo *ProductMongoRepository) SetImageObject(ctx context.Context, businessID, productID, objectName string) error {
	_, err := repo.Collection.UpdateOne(ctx,
		bson.M{"_id": productID, "businessId": businessID},
		bson.M{"$set": bson.M{"imageObject": objectName, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
