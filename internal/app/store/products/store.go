// internal/app/store/products/store.go
package products

import (
	"strings"
	"time"

	"github.com/vendaro/cartdeck/internal/app/system/htmlsanitize"
	"github.com/vendaro/cartdeck/internal/app/system/listview"
	"github.com/vendaro/cartdeck/internal/app/system/normalize"
	"github.com/vendaro/cartdeck/internal/domain/models"
)

// IDPrefix for product record ids.
const IDPrefix = "PRD"

// Store owns the in-memory product catalog behind the Site Admin
// panel's products table.
type Store struct {
	recs *listview.Store[models.Product]
}

// New creates an empty product store.
func New() *Store {
	return &Store{recs: listview.NewStore(IDPrefix, stamp)}
}

func stamp(p models.Product, id string, createdAt time.Time) models.Product {
	p.ID = id
	if p.CreatedAt.IsZero() {
		p.CreatedAt = createdAt
	}
	return p
}

// Records exposes the underlying record store for list controllers.
func (s *Store) Records() *listview.Store[models.Product] { return s.recs }

// CreateInput holds the fields for creating a new product.
type CreateInput struct {
	SiteID      string
	Name        string
	SKU         string
	Category    string
	PriceCents  int64
	Stock       int
	Status      string
	Description string
}

// Create adds a product, defaulting status to draft.
func (s *Store) Create(in CreateInput) models.Product {
	status := normalize.Status(in.Status)
	if status == "" {
		status = models.ProductStatusDraft
	}
	return s.recs.Add(models.Product{
		SiteID:      strings.TrimSpace(in.SiteID),
		Name:        normalize.Name(in.Name),
		SKU:         strings.ToUpper(strings.TrimSpace(in.SKU)),
		Category:    normalize.Status(in.Category),
		PriceCents:  in.PriceCents,
		Stock:       in.Stock,
		Status:      status,
		Description: htmlsanitize.Sanitize(in.Description),
	})
}

// UpdateInput is a partial patch; nil fields are left untouched.
type UpdateInput struct {
	Name        *string
	SKU         *string
	Category    *string
	PriceCents  *int64
	Stock       *int
	Status      *string
	Description *string
}

// Update merges the supplied fields into the product with the given id.
func (s *Store) Update(id string, in UpdateInput) (models.Product, error) {
	return s.recs.Update(id, func(p models.Product) models.Product {
		if in.Name != nil {
			p.Name = normalize.Name(*in.Name)
		}
		if in.SKU != nil {
			p.SKU = strings.ToUpper(strings.TrimSpace(*in.SKU))
		}
		if in.Category != nil {
			p.Category = normalize.Status(*in.Category)
		}
		if in.PriceCents != nil {
			p.PriceCents = *in.PriceCents
		}
		if in.Stock != nil {
			p.Stock = *in.Stock
		}
		if in.Status != nil {
			p.Status = normalize.Status(*in.Status)
		}
		if in.Description != nil {
			p.Description = htmlsanitize.Sanitize(*in.Description)
		}
		return p
	})
}

// Delete removes the product with the given id.
func (s *Store) Delete(id string) error { return s.recs.Delete(id) }

// Get looks up a product by id.
func (s *Store) Get(id string) (models.Product, bool) { return s.recs.Get(id) }

// All returns every product in insertion order.
func (s *Store) All() []models.Product { return s.recs.All() }

// ListConfig parameterizes the list engine for the products table.
func ListConfig() listview.Config[models.Product] {
	return listview.Config[models.Product]{
		Keys: []string{"status", "category", "site_id"},
		Filter: listview.FilterConfig[models.Product]{
			SearchFields: func(p models.Product) []string {
				return []string{p.Name, p.SKU}
			},
			Categorical: map[string]func(models.Product) string{
				"status":   func(p models.Product) string { return p.Status },
				"category": func(p models.Product) string { return p.Category },
				"site_id":  func(p models.Product) string { return p.SiteID },
			},
		},
		Counters: []listview.Counter[models.Product]{
			{Name: "active", Match: func(p models.Product, _ time.Time) bool { return p.Status == models.ProductStatusActive }},
			{Name: "draft", Match: func(p models.Product, _ time.Time) bool { return p.Status == models.ProductStatusDraft }},
			{Name: "out_of_stock", Match: func(p models.Product, _ time.Time) bool { return p.Status == models.ProductStatusOutOfStock }},
			{Name: "low_stock", Match: func(p models.Product, _ time.Time) bool {
				return p.Status == models.ProductStatusActive && p.Stock > 0 && p.Stock <= models.LowStockThreshold
			}},
		},
		PageSize: 10,
	}
}
