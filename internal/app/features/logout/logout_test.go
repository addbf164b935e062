// internal/app/features/logout/logout_test.go
package logout

import (
	"net/http"
	"testing"

	"go.uber.org/zap"

	"github.com/vendaro/cartdeck/internal/app/system/auditlog"
	"github.com/vendaro/cartdeck/internal/domain/models"
	"github.com/vendaro/cartdeck/internal/testutil"
)

func TestLogoutSignedIn(t *testing.T) {
	stores := testutil.SeededStores(t)
	auditLogger := auditlog.New(stores.AuditLogs, zap.NewNop(), auditlog.Config{Auth: "store", Admin: "off"})
	router := Routes(NewHandler(testutil.NewSessionManager(t), auditLogger, zap.NewNop()))

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequest(http.MethodPost, "/", testutil.SupportUser()))
	rec.AssertStatus(t, http.StatusNoContent)

	entries := stores.AuditLogs.All()
	last := entries[len(entries)-1]
	if last.Action != models.AuditActionLogout {
		t.Errorf("last audit action = %q", last.Action)
	}
}

func TestLogoutAnonymousIsNoOp(t *testing.T) {
	stores := testutil.SeededStores(t)
	auditLogger := auditlog.New(stores.AuditLogs, zap.NewNop(), auditlog.Config{Auth: "store", Admin: "off"})
	router := Routes(NewHandler(testutil.NewSessionManager(t), auditLogger, zap.NewNop()))

	before := len(stores.AuditLogs.All())

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest(http.MethodPost, "/"))
	rec.AssertStatus(t, http.StatusNoContent)

	if got := len(stores.AuditLogs.All()); got != before {
		t.Errorf("audit trail grew from %d to %d on anonymous logout", before, got)
	}
}
