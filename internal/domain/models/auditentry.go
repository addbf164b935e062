// internal/domain/models/auditentry.go
package models

import "time"

// Audit actions.
const (
	AuditActionCreate         = "create"
	AuditActionUpdate         = "update"
	AuditActionDelete         = "delete"
	AuditActionLogin          = "login"
	AuditActionLogout         = "logout"
	AuditActionExport         = "export"
	AuditActionSettingsUpdate = "settings_update"
)

// Audit entity types.
const (
	AuditEntityAdmin    = "admin"
	AuditEntitySite     = "site"
	AuditEntityProduct  = "product"
	AuditEntityCustomer = "customer"
	AuditEntitySettings = "settings"
	AuditEntitySession  = "session"
	AuditEntityAuditLog = "audit_log"
)

// Audit statuses.
const (
	AuditStatusSuccess = "success"
	AuditStatusFailed  = "failed"
	AuditStatusWarning = "warning"
)

// Performer identifies who carried out an audited action.
type Performer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AuditEntry is one row in the audit-log panel.
type AuditEntry struct {
	ID          string            `json:"id"`
	Action      string            `json:"action"`
	EntityType  string            `json:"entity_type"`
	EntityName  string            `json:"entity_name"`
	RefID       string            `json:"ref_id,omitempty"` // id of the affected record
	Status      string            `json:"status"`
	Performer   Performer         `json:"performed_by"`
	IP          string            `json:"ip,omitempty"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

func (e AuditEntry) EntityID() string      { return e.ID }
func (e AuditEntry) EntityTime() time.Time { return e.CreatedAt }
