package inventory

import "context"

// ItemRepository defines persistence operations for items
type ItemRepository interface {
	// FindAll returns all items ordered by creation time descending
	FindAll(ctx context.Context) ([]*Item, error)

	// FindByID returns the item with the given id, or shared.ErrNotFound
	FindByID(ctx context.Context, id string) (*Item, error)

	// Insert persists a new item and fills in its ID and timestamps
	Insert(ctx context.Context, item *Item) error

	// Update replaces the stored fields of an existing item and
	// refreshes its UpdatedAt timestamp
	Update(ctx context.Context, item *Item) error

	// Delete removes the item with the given id, or shared.ErrNotFound
	// when no document matches
	Delete(ctx context.Context, id string) error
}
