package payments

import (
	"context"
	"pidelocal-service/internal/app/contracts"
	"pidelocal-service/internal/app/models"
	"pidelocal-service/internal/pkg/constvars"
	"pidelocal-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentEventMongoRepository struct {
	Collection *mongo.Collection
}

func NewPaymentEventMongoRepository(db *mongo.Database) contracts.PaymentEventRepository {
	return &PaymentEventMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionPaymentEvents),
	}
}

// Insert stores the processed event. A second insert of the same event id is
// not an error.
func (repo *PaymentEventMongoRepository) Insert(ctx context.Context, event *models.PaymentEvent) error {
	_, err := repo.Collection.InsertOne(ctx, event)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}
