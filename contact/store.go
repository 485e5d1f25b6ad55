package contact

import (
	"context"

	"easternempire/db"
	"easternempire/models"
	"easternempire/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const listCap = 100

// Store persists contact messages. The collection is append-only.
type Store interface {
	Insert(ctx context.Context, msg models.ContactMessage) error
	List(ctx context.Context) ([]models.ContactMessage, error)
}

type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(database *db.Database) *MongoStore {
	return &MongoStore{coll: database.ContactMessages}
}

func (s *MongoStore) Insert(ctx context.Context, msg models.ContactMessage) error {
	_, err := s.coll.InsertOne(ctx, msg)
	return err
}

// List returns the most recent messages first.
func (s *MongoStore) List(ctx context.Context) ([]models.ContactMessage, error) {
	opts := options.Find().
		SetLimit(listCap).
		SetSort(bson.D{{Key: "created_at", Value: -1}})
	return utils.FindAndDecode[models.ContactMessage](ctx, s.coll, bson.M{}, opts)
}
