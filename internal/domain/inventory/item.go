package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxImages is the maximum number of images an item may carry.
const MaxImages = 3

// Item represents an inventory item
type Item struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CostPrice    float64   `json:"costPrice"`
	SellingPrice float64   `json:"sellingPrice"`
	Description  string    `json:"description"`
	Images       []string  `json:"images"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Draft holds the user-supplied fields of an item before it is persisted
type Draft struct {
	Name         string   `json:"name" validate:"required,max=60"`
	CostPrice    *float64 `json:"costPrice" validate:"required,gte=0"`
	SellingPrice *float64 `json:"sellingPrice" validate:"required,gte=0"`
	Description  string   `json:"description" validate:"required,max=1000"`
	Images       []string `json:"images" validate:"max=3,dive,required"`
}

// Patch holds a partial update to an item. Nil fields are left unchanged.
type Patch struct {
	Name         *string   `json:"name,omitempty"`
	CostPrice    *float64  `json:"costPrice,omitempty"`
	SellingPrice *float64  `json:"sellingPrice,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Images       *[]string `json:"images,omitempty"`
}

// NewItem builds an unsaved item from a validated draft.
// ID and timestamps are assigned by the store on insert.
func NewItem(d Draft) *Item {
	images := d.Images
	if images == nil {
		images = []string{}
	}
	return &Item{
		Name:         d.Name,
		CostPrice:    *d.CostPrice,
		SellingPrice: *d.SellingPrice,
		Description:  d.Description,
		Images:       images,
	}
}

// Apply merges the non-nil fields of a patch into the item
func (i *Item) Apply(p Patch) {
	if p.Name != nil {
		i.Name = *p.Name
	}
	if p.CostPrice != nil {
		i.CostPrice = *p.CostPrice
	}
	if p.SellingPrice != nil {
		i.SellingPrice = *p.SellingPrice
	}
	if p.Description != nil {
		i.Description = *p.Description
	}
	if p.Images != nil {
		i.Images = *p.Images
	}
}

// Draft converts the item's mutable fields back into a draft,
// used to re-validate the merged state of a partial update.
func (i *Item) Draft() Draft {
	cost := i.CostPrice
	selling := i.SellingPrice
	return Draft{
		Name:         i.Name,
		CostPrice:    &cost,
		SellingPrice: &selling,
		Description:  i.Description,
		Images:       i.Images,
	}
}

// Profit returns sellingPrice - costPrice
func (i *Item) Profit() decimal.Decimal {
	return decimal.NewFromFloat(i.SellingPrice).Sub(decimal.NewFromFloat(i.CostPrice))
}

// ProfitPercent returns the profit as a percentage of cost price.
// The second return value is false when costPrice is zero, in which
// case the percentage is undefined.
func (i *Item) ProfitPercent() (decimal.Decimal, bool) {
	cost := decimal.NewFromFloat(i.CostPrice)
	if cost.IsZero() {
		return decimal.Zero, false
	}
	return i.Profit().Div(cost).Mul(decimal.NewFromInt(100)), true
}

// FormatProfitPercent renders the profit percentage with one decimal
// place, or "N/A" when the cost price is zero.
func (i *Item) FormatProfitPercent() string {
	pct, ok := i.ProfitPercent()
	if !ok {
		return "N/A"
	}
	return pct.StringFixed(1) + "%"
}
