// internal/app/store/customers/store.go
package customers

import (
	"strings"
	"time"

	"github.com/vendaro/cartdeck/internal/app/system/listview"
	"github.com/vendaro/cartdeck/internal/app/system/normalize"
	"github.com/vendaro/cartdeck/internal/domain/models"
)

// IDPrefix for customer record ids.
const IDPrefix = "CUS"

// Store owns the in-memory customer collection behind the Site Admin
// panel's customers table.
type Store struct {
	recs *listview.Store[models.Customer]
}

// New creates an empty customer store.
func New() *Store {
	return &Store{recs: listview.NewStore(IDPrefix, stamp)}
}

func stamp(c models.Customer, id string, createdAt time.Time) models.Customer {
	c.ID = id
	if c.CreatedAt.IsZero() {
		c.CreatedAt = createdAt
	}
	return c
}

// Records exposes the underlying record store for list controllers.
func (s *Store) Records() *listview.Store[models.Customer] { return s.recs }

// CreateInput holds the fields for creating a new customer.
type CreateInput struct {
	SiteID   string
	FullName string
	Email    string
	Country  string
	Status   string
}

// Create adds a customer, defaulting status to active.
func (s *Store) Create(in CreateInput) models.Customer {
	status := normalize.Status(in.Status)
	if status == "" {
		status = models.CustomerStatusActive
	}
	return s.recs.Add(models.Customer{
		SiteID:   strings.TrimSpace(in.SiteID),
		FullName: normalize.Name(in.FullName),
		Email:    normalize.Email(in.Email),
		Country:  strings.ToUpper(strings.TrimSpace(in.Country)),
		Status:   status,
	})
}

// UpdateInput is a partial patch; nil fields are left untouched.
type UpdateInput struct {
	FullName        *string
	Email           *string
	Country         *string
	TotalOrders     *int
	TotalSpentCents *int64
	Status          *string
}

// Update merges the supplied fields into the customer with the given id.
func (s *Store) Update(id string, in UpdateInput) (models.Customer, error) {
	return s.recs.Update(id, func(c models.Customer) models.Customer {
		if in.FullName != nil {
			c.FullName = normalize.Name(*in.FullName)
		}
		if in.Email != nil {
			c.Email = normalize.Email(*in.Email)
		}
		if in.Country != nil {
			c.Country = strings.ToUpper(strings.TrimSpace(*in.Country))
		}
		if in.TotalOrders != nil {
			c.TotalOrders = *in.TotalOrders
		}
		if in.TotalSpentCents != nil {
			c.TotalSpentCents = *in.TotalSpentCents
		}
		if in.Status != nil {
			c.Status = normalize.Status(*in.Status)
		}
		return c
	})
}

// Delete removes the customer with the given id.
func (s *Store) Delete(id string) error { return s.recs.Delete(id) }

// Get looks up a customer by id.
func (s *Store) Get(id string) (models.Customer, bool) { return s.recs.Get(id) }

// All returns every customer in insertion order.
func (s *Store) All() []models.Customer { return s.recs.All() }

// ListConfig parameterizes the list engine for the customers table.
// "new_today" is evaluated against the clock at view time, so the
// card rolls over at local midnight without any store writes.
func ListConfig() listview.Config[models.Customer] {
	return listview.Config[models.Customer]{
		Keys: []string{"status", "country", "site_id"},
		Filter: listview.FilterConfig[models.Customer]{
			SearchFields: func(c models.Customer) []string {
				return []string{c.FullName, c.Email}
			},
			Categorical: map[string]func(models.Customer) string{
				"status":  func(c models.Customer) string { return c.Status },
				"country": func(c models.Customer) string { return c.Country },
				"site_id": func(c models.Customer) string { return c.SiteID },
			},
		},
		Counters: []listview.Counter[models.Customer]{
			{Name: "active", Match: func(c models.Customer, _ time.Time) bool { return c.Status == models.CustomerStatusActive }},
			{Name: "blocked", Match: func(c models.Customer, _ time.Time) bool { return c.Status == models.CustomerStatusBlocked }},
			{Name: "new_today", Match: func(c models.Customer, now time.Time) bool { return listview.SameDay(c.CreatedAt, now) }},
		},
		PageSize: 10,
	}
}
