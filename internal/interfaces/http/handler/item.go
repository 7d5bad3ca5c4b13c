package handler

import (
	"github.com/gin-gonic/gin"
	inventoryapp "github.com/inventory/backend/internal/application/inventory"
	"github.com/inventory/backend/internal/domain/inventory"
	"github.com/inventory/backend/internal/infrastructure/logger"
	"github.com/inventory/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

// ItemHandler handles item-related API endpoints
type ItemHandler struct {
	BaseHandler
	itemService *inventoryapp.ItemService
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(itemService *inventoryapp.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// Routes returns the route group for item endpoints
func (h *ItemHandler) Routes() *router.DomainGroup {
	g := router.NewDomainGroup("items", "/items")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return g
}

// List returns all items, newest first
func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.itemService.List(c.Request.Context())
	if err != nil {
		logger.GetGinLogger(c).Error("Failed to list items", zap.Error(err))
		h.HandleDomainError(c, err)
		return
	}

	h.OK(c, items)
}

// GetByID returns a single item
func (h *ItemHandler) GetByID(c *gin.Context) {
	item, err := h.itemService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.OK(c, item)
}

// Create validates and stores a new item
func (h *ItemHandler) Create(c *gin.Context) {
	var draft inventory.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.itemService.Create(c.Request.Context(), draft)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.OK(c, item)
}

// Update merges a partial or full item payload into an existing item
func (h *ItemHandler) Update(c *gin.Context) {
	var patch inventory.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.itemService.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.OK(c, item)
}

// Delete removes an item
func (h *ItemHandler) Delete(c *gin.Context) {
	if err := h.itemService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c)
}
