// internal/domain/models/admin.go
package models

import "time"

// Admin roles.
const (
	RoleSuperAdmin = "super_admin"
	RoleSiteAdmin  = "site_admin"
	RoleSupport    = "support"
)

// Record statuses shared across entity kinds.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Admin is a platform operator account shown in the Super Admin panel.
type Admin struct {
	ID           string     `json:"id"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	Status       string     `json:"status"`
	PasswordHash string     `json:"-"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (a Admin) EntityID() string      { return a.ID }
func (a Admin) EntityTime() time.Time { return a.CreatedAt }

// AdminRoles returns all valid admin roles.
func AdminRoles() []string {
	return []string{RoleSuperAdmin, RoleSiteAdmin, RoleSupport}
}

// IsValidAdminRole reports whether role is one of the known admin roles.
func IsValidAdminRole(role string) bool {
	for _, r := range AdminRoles() {
		if r == role {
			return true
		}
	}
	return false
}
