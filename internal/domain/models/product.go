// internal/domain/models/product.go
package models

import "time"

// Product statuses.
const (
	ProductStatusActive     = "active"
	ProductStatusDraft      = "draft"
	ProductStatusOutOfStock = "out_of_stock"
)

// LowStockThreshold is the stock level at or below which a product
// counts toward the "low stock" stat card.
const LowStockThreshold = 5

// Product is one catalog item in the Ecommerce Admin panel.
type Product struct {
	ID          string    `json:"id"`
	SiteID      string    `json:"site_id"`
	Name        string    `json:"name"`
	SKU         string    `json:"sku"`
	Category    string    `json:"category"`
	PriceCents  int64     `json:"price_cents"`
	Stock       int       `json:"stock"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"` // sanitized HTML
	CreatedAt   time.Time `json:"created_at"`
}

func (p Product) EntityID() string      { return p.ID }
func (p Product) EntityTime() time.Time { return p.CreatedAt }

// ProductCategories returns the category values the panel dropdown offers.
func ProductCategories() []string {
	return []string{"apparel", "electronics", "beauty", "food", "home", "toys", "other"}
}
