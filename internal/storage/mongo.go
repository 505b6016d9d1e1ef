package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"venuehub/pkg/logger"
	"venuehub/pkg/model"
)

const snapshotCollection = "Snapshots"

// snapshotDocument holds the whole serialized collection in one document,
// replaced wholesale on every save.
type snapshotDocument struct {
	ID        string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type MongoSnapshotter struct {
	client     *mongo.Client
	collection *mongo.Collection
	key        string
	log        *logger.Logger
}

func NewMongoSnapshotter(ctx context.Context, uri, database string, connTimeout time.Duration, key string, log *logger.Logger) (*MongoSnapshotter, error) {
	connectCtx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &MongoSnapshotter{
		client:     client,
		collection: client.Database(database).Collection(snapshotCollection),
		key:        key,
		log:        log,
	}, nil
}

func (m *MongoSnapshotter) Load(ctx context.Context) ([]model.Booking, error) {
	var doc snapshotDocument
	err := m.collection.FindOne(ctx, bson.M{"_id": m.key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []model.Booking{}, nil
		}
		return nil, fmt.Errorf("failed to read snapshot document: %w", err)
	}

	return decodeSnapshot(doc.Data, m.log), nil
}

func (m *MongoSnapshotter) Save(ctx context.Context, bookings []model.Booking) error {
	data, err := encodeSnapshot(bookings)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	doc := snapshotDocument{
		ID:        m.key,
		Data:      data,
		UpdatedAt: time.Now().UTC(),
	}

	_, err = m.collection.ReplaceOne(ctx, bson.M{"_id": m.key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to write snapshot document: %w", err)
	}
	return nil
}

func (m *MongoSnapshotter) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
