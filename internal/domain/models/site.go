// internal/domain/models/site.go
package models

import "time"

// Site statuses.
const (
	SiteStatusActive    = "active"
	SiteStatusSuspended = "suspended"
	SiteStatusPending   = "pending"
)

// Site plans.
const (
	PlanFree       = "free"
	PlanStarter    = "starter"
	PlanGrowth     = "growth"
	PlanEnterprise = "enterprise"
)

// Site is one merchant storefront on the platform.
type Site struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	OwnerEmail  string    `json:"owner_email"`
	Industry    string    `json:"industry"`
	Plan        string    `json:"plan"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"` // sanitized HTML
	CreatedAt   time.Time `json:"created_at"`
}

func (s Site) EntityID() string      { return s.ID }
func (s Site) EntityTime() time.Time { return s.CreatedAt }

// SiteIndustries returns the industry values the panel dropdown offers.
func SiteIndustries() []string {
	return []string{"fashion", "electronics", "beauty", "groceries", "home_goods", "sports", "other"}
}
