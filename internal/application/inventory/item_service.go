package inventory

import (
	"context"

	"github.com/inventory/backend/internal/domain/inventory"
)

// ItemService handles item-related business operations. It holds no
// state of its own; every read goes to the repository.
type ItemService struct {
	itemRepo inventory.ItemRepository
}

// NewItemService creates a new ItemService
func NewItemService(itemRepo inventory.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

// List returns all items, newest first
func (s *ItemService) List(ctx context.Context) ([]*inventory.Item, error) {
	return s.itemRepo.FindAll(ctx)
}

// Get returns a single item by id
func (s *ItemService) Get(ctx context.Context, id string) (*inventory.Item, error) {
	return s.itemRepo.FindByID(ctx, id)
}

// Create validates a draft and persists it as a new item
func (s *ItemService) Create(ctx context.Context, draft inventory.Draft) (*inventory.Item, error) {
	if err := inventory.Validate(draft); err != nil {
		return nil, err
	}

	item := inventory.NewItem(draft)
	if err := s.itemRepo.Insert(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// Update merges a patch into an existing item, re-validates the merged
// state, and persists it. Last write wins; there is no version field.
func (s *ItemService) Update(ctx context.Context, id string, patch inventory.Patch) (*inventory.Item, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Apply(patch)
	if err := inventory.Validate(item.Draft()); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// Delete removes an item. Deleting an id that no longer exists reports
// NotFound rather than succeeding silently.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	return s.itemRepo.Delete(ctx, id)
}
