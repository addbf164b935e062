// internal/app/store/auditlogs/store.go
package auditlogs

import (
	"time"

	"github.com/vendaro/cartdeck/internal/app/system/listview"
	"github.com/vendaro/cartdeck/internal/domain/models"
)

// IDPrefix for audit-log record ids.
const IDPrefix = "LOG"

// Store owns the in-memory audit trail shown in the audit-log panel.
// Entries are append-only from the application's point of view; the
// delete and reset paths exist for the dashboard's re-seed action.
type Store struct {
	recs *listview.Store[models.AuditEntry]
}

// New creates an empty audit-log store.
func New() *Store {
	return &Store{recs: listview.NewStore(IDPrefix, stamp)}
}

func stamp(e models.AuditEntry, id string, createdAt time.Time) models.AuditEntry {
	e.ID = id
	if e.CreatedAt.IsZero() {
		e.CreatedAt = createdAt
	}
	return e
}

// Records exposes the underlying record store for list controllers.
func (s *Store) Records() *listview.Store[models.AuditEntry] { return s.recs }

// Append records a new audit entry and returns it with its id set.
func (s *Store) Append(e models.AuditEntry) models.AuditEntry {
	return s.recs.Add(e)
}

// Get looks up an entry by id.
func (s *Store) Get(id string) (models.AuditEntry, bool) { return s.recs.Get(id) }

// All returns every entry in insertion order.
func (s *Store) All() []models.AuditEntry { return s.recs.All() }

// Len returns the number of entries.
func (s *Store) Len() int { return s.recs.Len() }

// ListConfig parameterizes the list engine for the audit-log panel:
// free-text search across who, what and where, dropdowns for action,
// entity type and status, and a date-range picker.
func ListConfig() listview.Config[models.AuditEntry] {
	return listview.Config[models.AuditEntry]{
		Keys: []string{"action", "entity_type", "status"},
		Filter: listview.FilterConfig[models.AuditEntry]{
			SearchFields: func(e models.AuditEntry) []string {
				return []string{e.Description, e.EntityName, e.Performer.Name, e.Performer.Email, e.IP}
			},
			Categorical: map[string]func(models.AuditEntry) string{
				"action":      func(e models.AuditEntry) string { return e.Action },
				"entity_type": func(e models.AuditEntry) string { return e.EntityType },
				"status":      func(e models.AuditEntry) string { return e.Status },
			},
		},
		Counters: []listview.Counter[models.AuditEntry]{
			{Name: "success", Match: func(e models.AuditEntry, _ time.Time) bool { return e.Status == models.AuditStatusSuccess }},
			{Name: "failed", Match: func(e models.AuditEntry, _ time.Time) bool { return e.Status == models.AuditStatusFailed }},
			{Name: "warning", Match: func(e models.AuditEntry, _ time.Time) bool { return e.Status == models.AuditStatusWarning }},
			{Name: "today", Match: func(e models.AuditEntry, now time.Time) bool { return listview.SameDay(e.CreatedAt, now) }},
		},
		PageSize: 20,
	}
}
