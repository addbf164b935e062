// internal/app/system/auditlog/logger_test.go
package auditlog

import (
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/vendaro/cartdeck/internal/app/store/auditlogs"
	"github.com/vendaro/cartdeck/internal/app/system/auth"
	"github.com/vendaro/cartdeck/internal/domain/models"
)

func TestRecordRoutesSessionEventsViaAuthSetting(t *testing.T) {
	store := auditlogs.New()
	l := New(store, zap.NewNop(), Config{Auth: "off", Admin: "store"})
	r := httptest.NewRequest("POST", "/", nil)

	// Session entity, Auth "off": dropped.
	l.LoginFailed(r, "someone@example.com", "wrong password")
	if got := store.Len(); got != 0 {
		t.Fatalf("store has %d entries, want 0", got)
	}

	// Admin entity, Admin "store": kept.
	u := &auth.SessionUser{ID: "ADM-001", Name: "Priya Sharma", Role: models.RoleSuperAdmin}
	l.Created(r, u, models.AuditEntityAdmin, "New Admin", "ADM-009")
	if got := store.Len(); got != 1 {
		t.Fatalf("store has %d entries, want 1", got)
	}
}

func TestRecordLogSettingSkipsStore(t *testing.T) {
	store := auditlogs.New()
	l := New(store, zap.NewNop(), Config{Auth: "log", Admin: "log"})
	r := httptest.NewRequest("POST", "/", nil)

	l.Logout(r, &auth.SessionUser{ID: "ADM-002", Name: "Marcus Webb"})
	l.SettingsUpdated(r, &auth.SessionUser{ID: "ADM-002", Name: "Marcus Webb"})
	if got := store.Len(); got != 0 {
		t.Errorf("store has %d entries, want 0 with log-only settings", got)
	}
}

func TestRecordEmptySettingMeansAll(t *testing.T) {
	store := auditlogs.New()
	l := New(store, zap.NewNop(), Config{})
	r := httptest.NewRequest("POST", "/", nil)

	l.LoginSuccess(r, models.Admin{ID: "ADM-001", FullName: "Priya Sharma"}, "password")

	entries := store.All()
	if len(entries) != 1 {
		t.Fatalf("store has %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Action != models.AuditActionLogin || e.Status != models.AuditStatusSuccess {
		t.Errorf("entry = %s/%s", e.Action, e.Status)
	}
	if e.Metadata["method"] != "password" {
		t.Errorf("method metadata = %q", e.Metadata["method"])
	}
}

func TestNilLoggerIsNoOp(t *testing.T) {
	var l *Logger
	r := httptest.NewRequest("POST", "/", nil)
	l.LoginFailed(r, "someone@example.com", "wrong password")
	l.Exported(r, nil, models.AuditEntityCustomer, 3)
}
