package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/inventory/backend/internal/domain/inventory"
	"github.com/inventory/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockItemRepository is a mock implementation of ItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) FindAll(ctx context.Context) ([]*inventory.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.Item), args.Error(1)
}

func (m *MockItemRepository) FindByID(ctx context.Context, id string) (*inventory.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Item), args.Error(1)
}

func (m *MockItemRepository) Insert(ctx context.Context, item *inventory.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, item *inventory.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func floatPtr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }

func validDraft() inventory.Draft {
	return inventory.Draft{
		Name:         "Widget",
		CostPrice:    floatPtr(10),
		SellingPrice: floatPtr(15),
		Description:  "A widget",
		Images:       []string{},
	}
}

func storedItem() *inventory.Item {
	now := time.Now().UTC()
	return &inventory.Item{
		ID:           "507f1f77bcf86cd799439011",
		Name:         "Widget",
		CostPrice:    10,
		SellingPrice: 15,
		Description:  "A widget",
		Images:       []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestItemService_List(t *testing.T) {
	t.Run("returns all items", func(t *testing.T) {
		repo := new(MockItemRepository)
		svc := NewItemService(repo)

		repo.On("FindAll", mock.Anything).Return([]*inventory.Item{storedItem()}, nil)

		items, err := svc.List(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Widget", items[0].Name)
		repo.AssertExpectations(t)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		repo := new(MockItemRepository)
		svc := NewItemService(repo)

		repo.On("FindAll", mock.Anything).Return(nil, shared.ErrStore)

		_, err := svc.List(context.Background())
		assert.ErrorIs(t, err, shared.ErrStore)
	})
}

func TestItemService_Get(t *testing.T) {
	t.Run("returns item by id", func(t *testing.T) {
		repo := new(MockItemRepository)
		svc := NewItemService(repo)

		item := storedItem()
		repo.On("FindByID", mock.Anything, item.ID).Return(item, nil)

		got, err := svc.Get(context.Background(), item.ID)
		require.NoError(t, err)
		assert.Equal(t, item, got)
	})

	t.Run("returns NotFound for missing id", func(t *testing.T) {
		repo := new(MockItemRepository)
		svc := NewItemService(repo)

		repo.On("FindByID", mock.Anything, "missing").Return(nil, shared.ErrNotFound)

		_, err := svc.Get(context.Background(), "missing")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestItemService_Create(t *testing.T) {
	t.Run("persists a valid draft", func(t *testing.T) {
		repo := new(MockItemRepository)
		svc := NewItemService(repo)

		repo.On("Insert", mock.Anything, mock.AnythingOfType("*inventory.Item")).
			Run(func(args mock.Arguments) {
				item := args.Get(1).(*inventory.Item)
				item.ID = "507f1f77bcf86cd799439011"
				item.CreatedAt = time.Now().UTC()
				item.UpdatedAt = item.CreatedAt
			}).
			Return(nil)

		item, err := svc.Create(context.Background(), validDraft())
		require.NoError(t, err)
		assert.NotEmpty(t, item.ID)
		assert.Equal(t, "Widget", item.Name)
		assert.Equal(t, 10.0, item.CostPrice)
		assert.False(t, item.CreatedAt.IsZero())
		repo.AssertExpectations(t)
	})

	t.Run("rejects an invalid draft without touching the store", func(t *testing.T) {
		repo := new(MockItemRepository)
		svc := NewItemService(repo)

		draft := validDraft()
		draft.Name = ""

		_, err := svc.Create(context.Background(), draft)

		var verr *inventory.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.NotEmpty(t, verr.Fields)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("propagates insert errors", func(t *testing.T) {
		repo := new(MockItemRepository)
		svc := NewItemService(repo)

		repo.On("Insert", mock.Anything, mock.Anything).Return(shared.ErrStore)

		_, err := svc.Create(context.Background(), validDraft())
		assert.ErrorIs(t, err, shared.ErrStore)
	})
}

func TestItemService_Update(t *testing.T) {
	t.Run("merges patch and persists", func(t *testing.T) {
		repo := new(MockItemRepository)
		svc := NewItemService(repo)

		item := storedItem()
		repo.On("FindByID", mock.Anything, item.ID).Return(item, nil)
		repo.On("Update", mock.Anything, item).Return(nil)

		updated, err := svc.Update(context.Background(), item.ID, inventory.Patch{
			Name:         strPtr("Gadget"),
			SellingPrice: floatPtr(20),
		})
		require.NoError(t, err)
		assert.Equal(t, "Gadget", updated.Name)
		assert.Equal(t, 20.0, updated.SellingPrice)
		assert.Equal(t, 10.0, updated.CostPrice)
		repo.AssertExpectations(t)
	})

	t.Run("returns NotFound for missing id", func(t *testing.T) {
		repo := new(MockItemRepository)
		svc := NewItemService(repo)

		repo.On("FindByID", mock.Anything, "missing").Return(nil, shared.ErrNotFound)

		_, err := svc.Update(context.Background(), "missing", inventory.Patch{Name: strPtr("x")})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("rejects a patch that breaks validation", func(t *testing.T) {
		repo := new(MockItemRepository)
		svc := NewItemService(repo)

		item := storedItem()
		repo.On("FindByID", mock.Anything, item.ID).Return(item, nil)

		_, err := svc.Update(context.Background(), item.ID, inventory.Patch{
			CostPrice: floatPtr(-1),
		})

		var verr *inventory.ValidationError
		require.ErrorAs(t, err, &verr)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("rejects a patch with too many images", func(t *testing.T) {
		repo := new(MockItemRepository)
		svc := NewItemService(repo)

		item := storedItem()
		repo.On("FindByID", mock.Anything, item.ID).Return(item, nil)

		images := []string{"a", "b", "c", "d"}
		_, err := svc.Update(context.Background(), item.ID, inventory.Patch{Images: &images})

		var verr *inventory.ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestItemService_Delete(t *testing.T) {
	t.Run("deletes an existing item", func(t *testing.T) {
		repo := new(MockItemRepository)
		svc := NewItemService(repo)

		repo.On("Delete", mock.Anything, "507f1f77bcf86cd799439011").Return(nil)

		err := svc.Delete(context.Background(), "507f1f77bcf86cd799439011")
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("second delete of the same id reports NotFound", func(t *testing.T) {
		repo := new(MockItemRepository)
		svc := NewItemService(repo)

		repo.On("Delete", mock.Anything, "gone").Return(shared.ErrNotFound)

		err := svc.Delete(context.Background(), "gone")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
