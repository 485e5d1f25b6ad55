package newsletter

import (
	"context"
	"errors"

	"easternempire/db"
	"easternempire/models"
	"easternempire/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const listCap = 1000

// Store persists newsletter subscriptions. The duplicate check is a
// separate lookup rather than a unique index, so two concurrent
// identical submissions can both pass it; that matches the deployed
// behavior and is accepted.
type Store interface {
	FindByEmail(ctx context.Context, email string) (*models.NewsletterSubscription, error)
	Insert(ctx context.Context, sub models.NewsletterSubscription) error
	List(ctx context.Context) ([]models.NewsletterSubscription, error)
}

type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(database *db.Database) *MongoStore {
	return &MongoStore{coll: database.NewsletterSubscriptions}
}

func (s *MongoStore) FindByEmail(ctx context.Context, email string) (*models.NewsletterSubscription, error) {
	var sub models.NewsletterSubscription
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&sub)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *MongoStore) Insert(ctx context.Context, sub models.NewsletterSubscription) error {
	_, err := s.coll.InsertOne(ctx, sub)
	return err
}

// List returns subscriptions in insertion order as stored; no sort is applied.
func (s *MongoStore) List(ctx context.Context) ([]models.NewsletterSubscription, error) {
	opts := options.Find().SetLimit(listCap)
	return utils.FindAndDecode[models.NewsletterSubscription](ctx, s.coll, bson.M{}, opts)
}
