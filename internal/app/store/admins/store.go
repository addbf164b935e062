// internal/app/store/admins/store.go
package admins

import (
	"time"

	"github.com/vendaro/cartdeck/internal/app/system/listview"
	"github.com/vendaro/cartdeck/internal/app/system/normalize"
	"github.com/vendaro/cartdeck/internal/domain/models"
)

// IDPrefix for admin record ids (e.g. "ADM-002").
const IDPrefix = "ADM"

// Store owns the in-memory admin collection behind the Super Admin
// panel's admins table.
type Store struct {
	recs *listview.Store[models.Admin]
}

// New creates an empty admin store; call Reseed (or Records().Reset)
// to load data.
func New() *Store {
	return &Store{recs: listview.NewStore(IDPrefix, stamp)}
}

func stamp(a models.Admin, id string, createdAt time.Time) models.Admin {
	a.ID = id
	if a.CreatedAt.IsZero() {
		a.CreatedAt = createdAt
	}
	return a
}

// Records exposes the underlying record store for list controllers.
func (s *Store) Records() *listview.Store[models.Admin] { return s.recs }

// CreateInput holds the fields for creating a new admin.
type CreateInput struct {
	FullName     string
	Email        string
	Role         string
	Status       string
	PasswordHash string
}

// Create adds an admin, defaulting status to active.
func (s *Store) Create(in CreateInput) models.Admin {
	status := normalize.Status(in.Status)
	if status == "" {
		status = models.StatusActive
	}
	return s.recs.Add(models.Admin{
		FullName:     normalize.Name(in.FullName),
		Email:        normalize.Email(in.Email),
		Role:         normalize.Role(in.Role),
		Status:       status,
		PasswordHash: in.PasswordHash,
	})
}

// UpdateInput is a partial patch; nil fields are left untouched.
type UpdateInput struct {
	FullName    *string
	Email       *string
	Role        *string
	Status      *string
	LastLoginAt *time.Time
}

// Update merges the supplied fields into the admin with the given id.
func (s *Store) Update(id string, in UpdateInput) (models.Admin, error) {
	return s.recs.Update(id, func(a models.Admin) models.Admin {
		if in.FullName != nil {
			a.FullName = normalize.Name(*in.FullName)
		}
		if in.Email != nil {
			a.Email = normalize.Email(*in.Email)
		}
		if in.Role != nil {
			a.Role = normalize.Role(*in.Role)
		}
		if in.Status != nil {
			a.Status = normalize.Status(*in.Status)
		}
		if in.LastLoginAt != nil {
			a.LastLoginAt = in.LastLoginAt
		}
		return a
	})
}

// Delete removes the admin with the given id.
func (s *Store) Delete(id string) error { return s.recs.Delete(id) }

// Get looks up an admin by id.
func (s *Store) Get(id string) (models.Admin, bool) { return s.recs.Get(id) }

// All returns every admin in insertion order.
func (s *Store) All() []models.Admin { return s.recs.All() }

// ByEmail finds an admin by normalized email. Used by login.
func (s *Store) ByEmail(email string) (models.Admin, bool) {
	want := normalize.Email(email)
	for _, a := range s.recs.All() {
		if a.Email == want {
			return a, true
		}
	}
	return models.Admin{}, false
}

// ListConfig parameterizes the list engine for the admins table:
// search over name and email, status and role dropdowns, and the
// stat cards above the table.
func ListConfig() listview.Config[models.Admin] {
	return listview.Config[models.Admin]{
		Keys: []string{"status", "role"},
		Filter: listview.FilterConfig[models.Admin]{
			SearchFields: func(a models.Admin) []string {
				return []string{a.FullName, a.Email}
			},
			Categorical: map[string]func(models.Admin) string{
				"status": func(a models.Admin) string { return a.Status },
				"role":   func(a models.Admin) string { return a.Role },
			},
		},
		Counters: []listview.Counter[models.Admin]{
			{Name: "active", Match: func(a models.Admin, _ time.Time) bool { return a.Status == models.StatusActive }},
			{Name: "inactive", Match: func(a models.Admin, _ time.Time) bool { return a.Status == models.StatusInactive }},
			{Name: "super_admins", Match: func(a models.Admin, _ time.Time) bool { return a.Role == models.RoleSuperAdmin }},
			{Name: "site_admins", Match: func(a models.Admin, _ time.Time) bool { return a.Role == models.RoleSiteAdmin }},
			{Name: "support", Match: func(a models.Admin, _ time.Time) bool { return a.Role == models.RoleSupport }},
		},
		PageSize: 10,
	}
}
