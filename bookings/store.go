package bookings

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

const listCap = 100

var ErrNotFound = errors.New("booking not found")

type Store interface {
	Insert(ctx context.Context, inquiry models.BookingInquiry) error
	List(ctx context.Context) ([]models.BookingInquiry, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(database *db.Database) *MongoStore {
	return &MongoStore{coll: database.BookingInquiries}
}

func (s *MongoStore) Insert(ctx context.Context, inquiry models.BookingInquiry) error {
	_, err := s.coll.InsertOne(ctx, inquiry)
	return err
}

// List returns the most recent inquiries first.
func (s *MongoStore) List(ctx context.Context) ([]models.BookingInquiry, error) {
	opts := options.Find().
		SetLimit(listCap).
		SetSort(bson.D{{Key: "created_at", Value: -1}})
	return utils.FindAndDecode[models.BookingInquiry](ctx, s.coll, bson.M{}, opts)
}

// UpdateStatus sets the status field on the matching inquiry. Existence
// is judged by the modified count, so writing a status equal to the
// current one is reported as ErrNotFound.
func (s *MongoStore) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := s.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return ErrNotFound
	}
	return nil
}
