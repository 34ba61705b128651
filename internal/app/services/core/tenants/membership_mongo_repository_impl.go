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
)

// MembershipMongoRepository spans three collections: businesses for the slug
// lookup, members and the admin access log.
type MembershipMongoRepository struct {
	Businesses *mongo.Collection
	Members    *mongo.Collection
	AccessLogs *mongo.Collection
}

func NewMembershipMongoRepository(db *mongo.Database) contracts.BusinessMemberRepository {
	return &MembershipMongoRepository{
		Businesses: db.Collection(constvars.MongoCollectionBusinesses),
		Members:    db.Collection(constvars.MongoCollectionMemberships),
		AccessLogs: db.Collection(constvars.MongoCollectionAccessLogs),
	}
}

func (repo *MembershipMongoRepository) FindBusinessBySlug(ctx context.Context, slug string) (*models.Business, error) {
	business := new(models.Business)
	err := repo.Businesses.FindOne(ctx, bson.M{"slug": slug, "deletedAt": bson.M{"$exists": false}}).Decode(business)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return business, nil
}

func (repo *MembershipMongoRepository) FindMembership(ctx context.Context, businessID, userID string) (*models.BusinessMember, error) {
	member := new(models.BusinessMember)
	err := repo.Members.FindOne(ctx, bson.M{"businessId": businessID, "userId": userID}).Decode(member)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return member, nil
}

func (repo *MembershipMongoRepository) UpdateLastAccess(ctx context.Context, memberID string, accessedAt time.Time) error {
	_, err := repo.Members.UpdateOne(ctx,
		bson.M{"_id": memberID},
		bson.M{"$set": bson.M{"lastAccessAt": accessedAt.UTC()}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *MembershipMongoRepository) InsertAccessLog(ctx context.Context, entry *models.AdminAccessLog) error {
	_, err := repo.AccessLogs.InsertOne(ctx, entry)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *MembershipMongoRepository) CreateMembership(ctx context.Context, member *models.BusinessMember) error {
	_, err := repo.Members.InsertOne(ctx, member)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrUserAlreadyMember(err)
		}
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}
