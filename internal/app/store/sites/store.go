// internal/app/store/sites/store.go
package sites

import (
	"time"

	"github.com/vendaro/cartdeck/internal/app/system/htmlsanitize"
	"github.com/vendaro/cartdeck/internal/app/system/listview"
	"github.com/vendaro/cartdeck/internal/app/system/normalize"
	"github.com/vendaro/cartdeck/internal/domain/models"
)

// IDPrefix for site record ids.
const IDPrefix = "SITE"

// Store owns the in-memory site collection behind the Super Admin
// panel's sites table.
type Store struct {
	recs *listview.Store[models.Site]
}

// New creates an empty site store.
func New() *Store {
	return &Store{recs: listview.NewStore(IDPrefix, stamp)}
}

func stamp(st models.Site, id string, createdAt time.Time) models.Site {
	st.ID = id
	if st.CreatedAt.IsZero() {
		st.CreatedAt = createdAt
	}
	return st
}

// Records exposes the underlying record store for list controllers.
func (s *Store) Records() *listview.Store[models.Site] { return s.recs }

// CreateInput holds the fields for creating a new site.
type CreateInput struct {
	Name        string
	Slug        string
	OwnerEmail  string
	Industry    string
	Plan        string
	Status      string
	Description string
}

// Create adds a site. New sites default to pending until reviewed.
// The description is rich text and is sanitized before storage.
func (s *Store) Create(in CreateInput) models.Site {
	status := normalize.Status(in.Status)
	if status == "" {
		status = models.SiteStatusPending
	}
	slug := in.Slug
	if slug == "" {
		slug = normalize.Slug(in.Name)
	}
	return s.recs.Add(models.Site{
		Name:        normalize.Name(in.Name),
		Slug:        normalize.Slug(slug),
		OwnerEmail:  normalize.Email(in.OwnerEmail),
		Industry:    normalize.Status(in.Industry),
		Plan:        normalize.Status(in.Plan),
		Status:      status,
		Description: htmlsanitize.Sanitize(in.Description),
	})
}

// UpdateInput is a partial patch; nil fields are left untouched.
type UpdateInput struct {
	Name        *string
	Slug        *string
	OwnerEmail  *string
	Industry    *string
	Plan        *string
	Status      *string
	Description *string
}

// Update merges the supplied fields into the site with the given id.
func (s *Store) Update(id string, in UpdateInput) (models.Site, error) {
	return s.recs.Update(id, func(st models.Site) models.Site {
		if in.Name != nil {
			st.Name = normalize.Name(*in.Name)
		}
		if in.Slug != nil {
			st.Slug = normalize.Slug(*in.Slug)
		}
		if in.OwnerEmail != nil {
			st.OwnerEmail = normalize.Email(*in.OwnerEmail)
		}
		if in.Industry != nil {
			st.Industry = normalize.Status(*in.Industry)
		}
		if in.Plan != nil {
			st.Plan = normalize.Status(*in.Plan)
		}
		if in.Status != nil {
			st.Status = normalize.Status(*in.Status)
		}
		if in.Description != nil {
			st.Description = htmlsanitize.Sanitize(*in.Description)
		}
		return st
	})
}

// Delete removes the site with the given id.
func (s *Store) Delete(id string) error { return s.recs.Delete(id) }

// Get looks up a site by id.
func (s *Store) Get(id string) (models.Site, bool) { return s.recs.Get(id) }

// All returns every site in insertion order.
func (s *Store) All() []models.Site { return s.recs.All() }

// ListConfig parameterizes the list engine for the sites table. The
// industry counters feed the distribution card, which renders each
// count as a percentage of the total.
func ListConfig() listview.Config[models.Site] {
	counters := []listview.Counter[models.Site]{
		{Name: "active", Match: func(st models.Site, _ time.Time) bool { return st.Status == models.SiteStatusActive }},
		{Name: "suspended", Match: func(st models.Site, _ time.Time) bool { return st.Status == models.SiteStatusSuspended }},
		{Name: "pending", Match: func(st models.Site, _ time.Time) bool { return st.Status == models.SiteStatusPending }},
	}
	for _, industry := range models.SiteIndustries() {
		industry := industry
		counters = append(counters, listview.Counter[models.Site]{
			Name:  "industry_" + industry,
			Match: func(st models.Site, _ time.Time) bool { return st.Industry == industry },
		})
	}

	return listview.Config[models.Site]{
		Keys: []string{"status", "industry", "plan"},
		Filter: listview.FilterConfig[models.Site]{
			SearchFields: func(st models.Site) []string {
				return []string{st.Name, st.Slug, st.OwnerEmail}
			},
			Categorical: map[string]func(models.Site) string{
				"status":   func(st models.Site) string { return st.Status },
				"industry": func(st models.Site) string { return st.Industry },
				"plan":     func(st models.Site) string { return st.Plan },
			},
		},
		Counters: counters,
		PageSize: 10,
	}
}
