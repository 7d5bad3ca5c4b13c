package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/inventory/backend/internal/domain/inventory"
	"github.com/inventory/backend/internal/domain/shared"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// itemDocument is the stored form of an item
type itemDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	CostPrice    float64            `bson:"costPrice"`
	SellingPrice float64            `bson:"sellingPrice"`
	Description  string             `bson:"description"`
	Images       []string           `bson:"images"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func (d *itemDocument) toDomain() *inventory.Item {
	images := d.Images
	if images == nil {
		images = []string{}
	}
	return &inventory.Item{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		CostPrice:    d.CostPrice,
		SellingPrice: d.SellingPrice,
		Description:  d.Description,
		Images:       images,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// MongoItemRepository implements inventory.ItemRepository on the
// shared document store
type MongoItemRepository struct {
	collection *mongo.Collection
}

// NewMongoItemRepository creates a new MongoItemRepository
func NewMongoItemRepository(db *Database) *MongoItemRepository {
	return &MongoItemRepository{collection: db.Items()}
}

// FindAll returns all items ordered by creation time descending
func (r *MongoItemRepository) FindAll(ctx context.Context) ([]*inventory.Item, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, storeError(err)
	}
	defer cursor.Close(ctx)

	items := make([]*inventory.Item, 0)
	for cursor.Next(ctx) {
		var doc itemDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, storeError(err)
		}
		items = append(items, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, storeError(err)
	}

	return items, nil
}

// FindByID returns the item with the given id
func (r *MongoItemRepository) FindByID(ctx context.Context, id string) (*inventory.Item, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Malformed ids cannot match any document
		return nil, shared.ErrNotFound
	}

	var doc itemDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, shared.ErrNotFound
		}
		return nil, storeError(err)
	}

	return doc.toDomain(), nil
}

// Insert persists a new item and fills in its ID and timestamps
func (r *MongoItemRepository) Insert(ctx context.Context, item *inventory.Item) error {
	now := time.Now().UTC()
	doc := itemDocument{
		Name:         item.Name,
		CostPrice:    item.CostPrice,
		SellingPrice: item.SellingPrice,
		Description:  item.Description,
		Images:       item.Images,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if doc.Images == nil {
		doc.Images = []string{}
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return storeError(err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("%w: unexpected inserted id type %T", shared.ErrStore, result.InsertedID)
	}

	item.ID = oid.Hex()
	item.CreatedAt = now
	item.UpdatedAt = now
	return nil
}

// Update replaces the stored fields of an existing item
func (r *MongoItemRepository) Update(ctx context.Context, item *inventory.Item) error {
	oid, err := primitive.ObjectIDFromHex(item.ID)
	if err != nil {
		return shared.ErrNotFound
	}

	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"name":         item.Name,
			"costPrice":    item.CostPrice,
			"sellingPrice": item.SellingPrice,
			"description":  item.Description,
			"images":       item.Images,
			"updatedAt":    now,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return storeError(err)
	}
	if result.MatchedCount == 0 {
		return shared.ErrNotFound
	}

	item.UpdatedAt = now
	return nil
}

// Delete removes the item with the given id
func (r *MongoItemRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return shared.ErrNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return storeError(err)
	}
	// A delete that matched nothing reports NotFound so a second
	// delete of the same id does not silently succeed
	if result.DeletedCount == 0 {
		return shared.ErrNotFound
	}

	return nil
}

// storeError wraps a driver error, never leaking its text to clients
func storeError(err error) error {
	return fmt.Errorf("%w: %v", shared.ErrStore, err)
}
