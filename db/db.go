package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Database holds the shared MongoDB client and the collection handles
// used by the resource handlers. A single Database is created at startup
// and injected; the mongo client is safe for concurrent use.
type Database struct {
	client *mongo.Client

	NewsletterSubscriptions *mongo.Collection
	ContactMessages         *mongo.Collection
	Events                  *mongo.Collection
	BookingInquiries        *mongo.Collection
}

func Connect(ctx context.Context, uri, name string) (*Database, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	d := client.Database(name)
	return &Database{
		client:                  client,
		NewsletterSubscriptions: d.Collection("newsletter_subscriptions"),
		ContactMessages:         d.Collection("contact_messages"),
		Events:                  d.Collection("events"),
		BookingInquiries:        d.Collection("booking_inquiries"),
	}, nil
}

func (d *Database) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
