// internal/app/store/auditlogs/seed.go
package auditlogs

import (
	"time"

	"github.com/vendaro/cartdeck/internal/domain/models"
)

// Seed returns the mock audit trail the panels ship with. Timestamps
// are relative to now so the date-range filter and the "today" card
// always have live data.
func Seed() []models.AuditEntry {
	now := time.Now()
	ago := func(d time.Duration) time.Time { return now.Add(-d) }

	priya := models.Performer{ID: "ADM-001", Name: "Priya Sharma", Email: "priya.sharma@cartdeck.dev", Role: models.RoleSuperAdmin}
	marcus := models.Performer{ID: "ADM-002", Name: "Marcus Webb", Email: "marcus.webb@cartdeck.dev", Role: models.RoleSuperAdmin}
	elena := models.Performer{ID: "ADM-003", Name: "Elena Petrova", Email: "elena.petrova@cartdeck.dev", Role: models.RoleSiteAdmin}
	tomas := models.Performer{ID: "ADM-006", Name: "Tomas Ruiz", Email: "tomas.ruiz@cartdeck.dev", Role: models.RoleSupport}

	return []models.AuditEntry{
		{Action: models.AuditActionLogin, EntityType: models.AuditEntitySession, EntityName: "Priya Sharma", Status: models.AuditStatusSuccess, Performer: priya, IP: "203.0.113.14", Description: "Signed in", CreatedAt: ago(26 * 24 * time.Hour)},
		{Action: models.AuditActionCreate, EntityType: models.AuditEntitySite, EntityName: "Cedar & Sage", RefID: "SITE-009", Status: models.AuditStatusSuccess, Performer: priya, IP: "203.0.113.14", Description: "Created site Cedar & Sage", CreatedAt: ago(25 * 24 * time.Hour)},
		{Action: models.AuditActionUpdate, EntityType: models.AuditEntitySite, EntityName: "Fresh Crate", RefID: "SITE-004", Status: models.AuditStatusWarning, Performer: marcus, IP: "198.51.100.7", Description: "Suspended site Fresh Crate for chargeback review", Metadata: map[string]string{"previous_status": "active"}, CreatedAt: ago(20 * 24 * time.Hour)},
		{Action: models.AuditActionLogin, EntityType: models.AuditEntitySession, EntityName: "Viktor Halvorsen", Status: models.AuditStatusFailed, Performer: models.Performer{Name: "Viktor Halvorsen", Email: "viktor.h@example.no"}, IP: "192.0.2.200", Description: "Failed sign-in, wrong password", CreatedAt: ago(18 * 24 * time.Hour)},
		{Action: models.AuditActionUpdate, EntityType: models.AuditEntityCustomer, EntityName: "Viktor Halvorsen", RefID: "CUS-004", Status: models.AuditStatusSuccess, Performer: tomas, IP: "203.0.113.88", Description: "Blocked customer after repeated failed sign-ins", CreatedAt: ago(18*24*time.Hour - 20*time.Minute)},
		{Action: models.AuditActionCreate, EntityType: models.AuditEntityProduct, EntityName: "Ultralight Wind Shell", RefID: "PRD-010", Status: models.AuditStatusSuccess, Performer: elena, IP: "198.51.100.42", Description: "Created product Ultralight Wind Shell", CreatedAt: ago(14 * 24 * time.Hour)},
		{Action: models.AuditActionUpdate, EntityType: models.AuditEntityProduct, EntityName: "Walnut Side Table", RefID: "PRD-008", Status: models.AuditStatusWarning, Performer: elena, IP: "198.51.100.42", Description: "Marked Walnut Side Table out of stock", CreatedAt: ago(11 * 24 * time.Hour)},
		{Action: models.AuditActionSettingsUpdate, EntityType: models.AuditEntitySettings, EntityName: "Platform settings", Status: models.AuditStatusSuccess, Performer: marcus, IP: "198.51.100.7", Description: "Changed default currency to EUR", Metadata: map[string]string{"field": "default_currency", "from": "USD", "to": "EUR"}, CreatedAt: ago(9 * 24 * time.Hour)},
		{Action: models.AuditActionDelete, EntityType: models.AuditEntityProduct, EntityName: "Legacy Gift Card", RefID: "PRD-004", Status: models.AuditStatusSuccess, Performer: elena, IP: "198.51.100.42", Description: "Deleted product Legacy Gift Card", CreatedAt: ago(7 * 24 * time.Hour)},
		{Action: models.AuditActionExport, EntityType: models.AuditEntityCustomer, EntityName: "Customers export", Status: models.AuditStatusSuccess, Performer: tomas, IP: "203.0.113.88", Description: "Exported 14 customers to CSV", CreatedAt: ago(5 * 24 * time.Hour)},
		{Action: models.AuditActionLogin, EntityType: models.AuditEntitySession, EntityName: "Elena Petrova", Status: models.AuditStatusSuccess, Performer: elena, IP: "198.51.100.42", Description: "Signed in", CreatedAt: ago(3 * 24 * time.Hour)},
		{Action: models.AuditActionUpdate, EntityType: models.AuditEntityAdmin, EntityName: "Jakub Nowak", RefID: "ADM-008", Status: models.AuditStatusSuccess, Performer: priya, IP: "203.0.113.14", Description: "Deactivated admin Jakub Nowak", Metadata: map[string]string{"previous_status": "active"}, CreatedAt: ago(2 * 24 * time.Hour)},
		{Action: models.AuditActionLogout, EntityType: models.AuditEntitySession, EntityName: "Marcus Webb", Status: models.AuditStatusSuccess, Performer: marcus, IP: "198.51.100.7", Description: "Signed out", CreatedAt: ago(26 * time.Hour)},
		{Action: models.AuditActionLogin, EntityType: models.AuditEntitySession, EntityName: "Tomas Ruiz", Status: models.AuditStatusSuccess, Performer: tomas, IP: "203.0.113.88", Description: "Signed in", CreatedAt: ago(70 * time.Minute)},
		{Action: models.AuditActionCreate, EntityType: models.AuditEntityCustomer, EntityName: "Oliver Smith", RefID: "CUS-014", Status: models.AuditStatusSuccess, Performer: tomas, IP: "203.0.113.88", Description: "Created customer Oliver Smith", CreatedAt: ago(25 * time.Minute)},
	}
}
