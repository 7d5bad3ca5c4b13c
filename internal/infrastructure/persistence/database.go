package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/inventory/backend/internal/domain/shared"
	"github.com/inventory/backend/internal/infrastructure/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const itemsCollection = "items"

// Database holds the shared document store client for the process lifetime.
// The mongo client maintains its own connection pool; one Database instance
// is created at startup and reused by every request.
type Database struct {
	client      *mongo.Client
	db          *mongo.Database
	pingTimeout time.Duration
}

// NewDatabase connects to the document store with the given configuration
func NewDatabase(ctx context.Context, cfg *config.MongoConfig) (*Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrConnectionFailed, err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: %v", shared.ErrConnectionFailed, err)
	}

	return &Database{
		client:      client,
		db:          client.Database(cfg.Database),
		pingTimeout: cfg.PingTimeout,
	}, nil
}

// Close disconnects from the document store
func (d *Database) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// Items returns the items collection
func (d *Database) Items() *mongo.Collection {
	return d.db.Collection(itemsCollection)
}

// PingLatency pings the store and returns the round-trip time
func (d *Database) PingLatency(ctx context.Context) (time.Duration, error) {
	pingCtx, cancel := context.WithTimeout(ctx, d.pingTimeout)
	defer cancel()

	start := time.Now()
	if err := d.client.Ping(pingCtx, readpref.Primary()); err != nil {
		return 0, fmt.Errorf("%w: %v", shared.ErrConnectionFailed, err)
	}
	return time.Since(start), nil
}

// ProvisionItems creates the items collection with its schema validator
// and indexes. Safe to call on every startup: an already-existing
// collection is left alone and index creation is idempotent.
func (d *Database) ProvisionItems(ctx context.Context) error {
	validator := bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"name", "costPrice", "sellingPrice", "description"},
			"properties": bson.M{
				"name": bson.M{
					"bsonType":  "string",
					"maxLength": 60,
				},
				"costPrice": bson.M{
					"bsonType": []string{"double", "int", "long", "decimal"},
					"minimum":  0,
				},
				"sellingPrice": bson.M{
					"bsonType": []string{"double", "int", "long", "decimal"},
					"minimum":  0,
				},
				"description": bson.M{
					"bsonType":  "string",
					"maxLength": 1000,
				},
				"images": bson.M{
					"bsonType": "array",
					"maxItems": 3,
					"items":    bson.M{"bsonType": "string"},
				},
			},
		},
	}

	err := d.db.CreateCollection(ctx, itemsCollection, options.CreateCollection().SetValidator(validator))
	if err != nil {
		// CommandError code 48 (NamespaceExists) means a previous
		// start already provisioned the collection
		var cmdErr mongo.CommandError
		if !errors.As(err, &cmdErr) || cmdErr.Code != 48 {
			return fmt.Errorf("%w: %v", shared.ErrStore, err)
		}
	}

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: "text"}},
			Options: options.Index().SetName("name_text"),
		},
		{
			Keys: bson.D{
				{Key: "costPrice", Value: 1},
				{Key: "sellingPrice", Value: 1},
			},
			Options: options.Index().SetName("costPrice_1_sellingPrice_1"),
		},
	}
	if _, err := d.Items().Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStore, err)
	}

	return nil
}
