// internal/domain/models/customer.go
package models

import "time"

// Customer statuses.
const (
	CustomerStatusActive  = "active"
	CustomerStatusBlocked = "blocked"
)

// Customer is one shopper account scoped to a site.
type Customer struct {
	ID              string    `json:"id"`
	SiteID          string    `json:"site_id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	Country         string    `json:"country"`
	TotalOrders     int       `json:"total_orders"`
	TotalSpentCents int64     `json:"total_spent_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func (c Customer) EntityID() string      { return c.ID }
func (c Customer) EntityTime() time.Time { return c.CreatedAt }
