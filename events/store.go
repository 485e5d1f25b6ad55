package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"easternempire/db"
	"easternempire/models"
	"easternempire/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const listCap = 1000

var ErrNotFound = errors.New("event not found")

type Store interface {
	Insert(ctx context.Context, event models.Event) error
	List(ctx context.Context) ([]models.Event, error)
	DeleteByID(ctx context.Context, id string) error
}

type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(database *db.Database) *MongoStore {
	return &MongoStore{coll: database.Events}
}

// eventDoc captures the raw document shape. Older documents (seeded by
// hand) may carry a store-generated _id and no id field.
type eventDoc struct {
	DocID       interface{} `bson:"_id,omitempty"`
	ID          string      `bson:"id,omitempty"`
	Title       string      `bson:"title"`
	Venue       string      `bson:"venue"`
	Address     string      `bson:"address"`
	Date        string      `bson:"date"`
	Time        string      `bson:"time"`
	Description *string     `bson:"description,omitempty"`
	TicketURL   *string     `bson:"ticketUrl,omitempty"`
	CreatedAt   time.Time   `bson:"created_at"`
}

// toPublicEvent maps a stored document to the caller-visible record.
// The public id field wins; otherwise the store identifier is surfaced
// as a plain string, never as a native ObjectID.
func toPublicEvent(d eventDoc) models.Event {
	id := d.ID
	if id == "" && d.DocID != nil {
		switch v := d.DocID.(type) {
		case primitive.ObjectID:
			id = v.Hex()
		case string:
			id = v
		default:
			id = fmt.Sprint(v)
		}
	}
	return models.Event{
		ID:          id,
		Title:       d.Title,
		Venue:       d.Venue,
		Address:     d.Address,
		Date:        d.Date,
		Time:        d.Time,
		Description: d.Description,
		TicketURL:   d.TicketURL,
		CreatedAt:   d.CreatedAt,
	}
}

func (s *MongoStore) Insert(ctx context.Context, event models.Event) error {
	_, err := s.coll.InsertOne(ctx, event)
	return err
}

// List returns events ascending by date. The sort is lexicographic on
// the stored date strings.
func (s *MongoStore) List(ctx context.Context) ([]models.Event, error) {
	opts := options.Find().
		SetLimit(listCap).
		SetSort(bson.D{{Key: "date", Value: 1}})
	docs, err := utils.FindAndDecode[eventDoc](ctx, s.coll, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	events := make([]models.Event, 0, len(docs))
	for _, d := range docs {
		events = append(events, toPublicEvent(d))
	}
	return events, nil
}

func (s *MongoStore) DeleteByID(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
