package orders

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

type OrderMongoRepository struct {
	Collection *mongo.Collection
}

func NewOrderMongoRepository(db *mongo.Database) contracts.OrderRepository {
	return &OrderMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionOrders),
	}
}

func (repo *OrderMongoRepository) Create(ctx context.Context, order *models.Order) error {
	_, err := repo.Collection.InsertOne(ctx, order)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *OrderMongoRepository) FindByID(ctx context.Context, businessID, orderID string) (*models.Order, error) {
	return repo.findOne(ctx, bson.M{"_id": orderID, "businessId": businessID})
}

func (repo *OrderMongoRepository) FindByOrderID(ctx context.Context, orderID string) (*models.Order, error) {
	return repo.findOne(ctx, bson.M{"_id": orderID})
}

func (repo *OrderMongoRepository) List(ctx context.Context, filter models.OrderFilter) ([]models.Order, int, error) {
	query := bson.M{"businessId": filter.BusinessID}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.PickupDate != "" {
		query["pickupDate"] = filter.PickupDate
	}

	total, err := repo.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "pickupDate", Value: -1}, {Key: "pickupTime", Value: -1}, {Key: "createdAt", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.PageSize)).
		SetLimit(int64(filter.PageSize))
	cursor, err := repo.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	orders := make([]models.Order, 0)
	if err = cursor.All(ctx, &orders); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return orders, int(total), nil
}

func (repo *OrderMongoRepository) UpdateStatus(ctx context.Context, orderID string, change models.OrderStatusChange, paymentStatus string) (bool, error) {
	set := bson.M{
		"status":    change.To,
		"updatedAt": change.ChangedAt,
	}
	if paymentStatus != "" {
		set["paymentStatus"] = paymentStatus
	}
	update := bson.M{
		"$set":  set,
		"$push": bson.M{"statusHistory": change},
	}

	result, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": orderID, "status": change.From}, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount > 0, nil
}

func (repo *OrderMongoRepository) SetCheckoutSession(ctx context.Context, orderID, checkoutSessionID string) error {
	update := bson.M{"$set": bson.M{
		"checkoutSessionId": checkoutSessionID,
		"updatedAt":         time.Now().UTC(),
	}}
	_, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": orderID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *OrderMongoRepository) FindAwaitingPaymentBefore(ctx context.Context, before time.Time, limit int) ([]models.Order, error) {
	filter := bson.M{
		"status":        constvars.OrderStatusAwaitingPayment,
		"paymentMethod": constvars.PaymentMethodCard,
		"createdAt":     bson.M{"$lt": before},
	}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	orders := make([]models.Order, 0)
	if err = cursor.All(ctx, &orders); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return orders, nil
}

func (repo *OrderMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Order, error) {
	order := new(models.Order)
	err := repo.Collection.FindOne(ctx, filter).Decode(order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return order, nil
}
