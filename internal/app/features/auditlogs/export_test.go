// internal/app/features/auditlogs/export_test.go
package auditlogs

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"testing"

	"go.uber.org/zap"

	"github.com/vendaro/cartdeck/internal/app/system/auditlog"
	"github.com/vendaro/cartdeck/internal/app/system/seeding"
	"github.com/vendaro/cartdeck/internal/domain/models"
	"github.com/vendaro/cartdeck/internal/testutil"
)

func newTestRouter(t *testing.T) (http.Handler, seeding.Stores) {
	t.Helper()
	stores := testutil.SeededStores(t)
	auditLogger := auditlog.New(stores.AuditLogs, zap.NewNop(), auditlog.Config{Auth: "off", Admin: "store"})
	h := NewHandler(stores.AuditLogs, auditLogger, zap.NewNop())
	return Routes(h, testutil.NewSessionManager(t)), stores
}

func TestExportRequiresAuthentication(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/export.csv"))
	rec.AssertStatus(t, http.StatusUnauthorized)
}

func TestExportCSVShape(t *testing.T) {
	router, stores := newTestRouter(t)
	seeded := len(stores.AuditLogs.All())

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequest(http.MethodGet, "/export.csv", testutil.SupportUser()))
	rec.AssertStatus(t, http.StatusOK)

	if ct := rec.Header().Get("Content-Type"); ct != "text/csv; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd == "" {
		t.Error("Content-Disposition missing")
	}

	body := rec.Body.Bytes()
	bom := []byte{0xEF, 0xBB, 0xBF}
	if !bytes.HasPrefix(body, bom) {
		t.Fatal("CSV missing UTF-8 BOM")
	}

	rows, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(body, bom))).ReadAll()
	if err != nil {
		t.Fatalf("parse CSV: %v", err)
	}
	if len(rows) != seeded+1 {
		t.Errorf("got %d rows, want header + %d entries", len(rows), seeded)
	}
	if rows[0][0] != "id" || rows[0][2] != "action" {
		t.Errorf("header = %v", rows[0])
	}
}

func TestExportHonorsFilters(t *testing.T) {
	router, stores := newTestRouter(t)

	want := 0
	for _, e := range stores.AuditLogs.All() {
		if e.Status == models.AuditStatusFailed {
			want++
		}
	}
	if want == 0 {
		t.Fatal("seed has no failed entries")
	}

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequest(http.MethodGet, "/export.csv?status=failed", testutil.SupportUser()))
	rec.AssertStatus(t, http.StatusOK)

	body := bytes.TrimPrefix(rec.Body.Bytes(), []byte{0xEF, 0xBB, 0xBF})
	rows, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	if err != nil {
		t.Fatalf("parse CSV: %v", err)
	}
	if len(rows) != want+1 {
		t.Errorf("got %d data rows, want %d", len(rows)-1, want)
	}
	for _, row := range rows[1:] {
		if row[6] != "failed" {
			t.Errorf("row status = %q", row[6])
		}
	}
}

func TestExportIsAudited(t *testing.T) {
	router, stores := newTestRouter(t)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequest(http.MethodGet, "/export.csv", testutil.SuperAdminUser()))
	rec.AssertStatus(t, http.StatusOK)

	last := stores.AuditLogs.All()
	entry := last[len(last)-1]
	if entry.Action != models.AuditActionExport || entry.EntityType != models.AuditEntityAuditLog {
		t.Errorf("last entry = %s/%s", entry.Action, entry.EntityType)
	}
}

func TestSanitizeCSVField(t *testing.T) {
	cases := map[string]string{
		"=SUM(A1)":  "'=SUM(A1)",
		"+1":        "'+1",
		"-2":        "'-2",
		"@cmd":      "'@cmd",
		"plain":     "plain",
		"":          "",
		"mid=value": "mid=value",
	}
	for in, want := range cases {
		if got := sanitizeCSVField(in); got != want {
			t.Errorf("sanitizeCSVField(%q) = %q, want %q", in, got, want)
		}
	}
}
