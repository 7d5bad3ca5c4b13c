package client

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/inventory/backend/internal/domain/inventory"
)

// ViewState describes what an item list view should render.
type ViewState string

const (
	// StateLoading means a fetch is in flight and no data is available yet
	StateLoading ViewState = "loading"
	// StateLoaded means the last fetch succeeded
	StateLoaded ViewState = "loaded"
	// StateLoadError means the last fetch failed
	StateLoadError ViewState = "load_error"
)

// ItemView holds the item list state for a UI front end. Every
// mutation refetches the full list from the server so the view never
// drifts from the stored data.
type ItemView struct {
	client *Client
	logger *zap.Logger

	mu    sync.RWMutex
	state ViewState
	items []*inventory.Item
	err   error
}

// NewItemView creates a view in the loading state. Call Refresh to
// populate it.
func NewItemView(c *Client, logger *zap.Logger) *ItemView {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ItemView{
		client: c,
		logger: logger,
		state:  StateLoading,
	}
}

// State returns the current render state
func (v *ItemView) State() ViewState {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state
}

// Items returns the items from the last successful fetch. The slice
// is a copy; callers may not mutate the view through it.
func (v *ItemView) Items() []*inventory.Item {
	v.mu.RLock()
	defer v.mu.RUnlock()
	items := make([]*inventory.Item, len(v.items))
	copy(items, v.items)
	return items
}

// Err returns the fetch error when the view is in the load_error state
func (v *ItemView) Err() error {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.err
}

// Refresh fetches the full item list and moves the view to loaded or
// load_error. The previously loaded items stay readable while the
// fetch is in flight.
func (v *ItemView) Refresh(ctx context.Context) error {
	v.mu.Lock()
	v.state = StateLoading
	v.mu.Unlock()

	items, err := v.client.ListItems(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.state = StateLoadError
		v.err = err
		v.logger.Error("Item list fetch failed", zap.Error(err))
		return err
	}
	v.state = StateLoaded
	v.items = items
	v.err = nil
	return nil
}

// Create stores a new item and refetches the list. When the create
// itself fails the current list is left untouched and the error is
// returned for the UI to surface.
func (v *ItemView) Create(ctx context.Context, draft inventory.Draft) (*inventory.Item, error) {
	item, err := v.client.CreateItem(ctx, draft)
	if err != nil {
		return nil, err
	}
	if err := v.Refresh(ctx); err != nil {
		return item, err
	}
	return item, nil
}

// Update merges a patch into an item and refetches the list
func (v *ItemView) Update(ctx context.Context, id string, patch inventory.Patch) (*inventory.Item, error) {
	item, err := v.client.UpdateItem(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if err := v.Refresh(ctx); err != nil {
		return item, err
	}
	return item, nil
}

// Delete removes an item and refetches the list
func (v *ItemView) Delete(ctx context.Context, id string) error {
	if err := v.client.DeleteItem(ctx, id); err != nil {
		return err
	}
	return v.Refresh(ctx)
}
