// internal/app/features/dashboard/handler_test.go
package dashboard

import (
	"net/http"
	"testing"

	"go.uber.org/zap"

	adminstore "github.com/vendaro/cartdeck/internal/app/store/admins"
	"github.com/vendaro/cartdeck/internal/app/system/listview"
	"github.com/vendaro/cartdeck/internal/app/system/seeding"
	"github.com/vendaro/cartdeck/internal/domain/models"
	"github.com/vendaro/cartdeck/internal/testutil"
)

func newTestRouter(t *testing.T) (http.Handler, seeding.Stores) {
	t.Helper()
	stores := testutil.SeededStores(t)
	h := NewHandler(stores, testutil.SeedPassword, zap.NewNop())
	return Routes(h, testutil.NewSessionManager(t)), stores
}

type overviewResponse struct {
	Admins    listview.Summary    `json:"admins"`
	Sites     listview.Summary    `json:"sites"`
	Products  listview.Summary    `json:"products"`
	Customers listview.Summary    `json:"customers"`
	AuditLogs listview.Summary    `json:"audit_logs"`
	Recent    []models.AuditEntry `json:"recent_activity"`
}

func TestOverviewRequiresAuthentication(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"))
	rec.AssertStatus(t, http.StatusUnauthorized)
}

func TestOverviewTotals(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequest(http.MethodGet, "/", testutil.SupportUser()))
	rec.AssertStatus(t, http.StatusOK)

	var got overviewResponse
	rec.DecodeJSON(t, &got)

	totals := map[string]int{
		"admins":     got.Admins["total"],
		"sites":      got.Sites["total"],
		"products":   got.Products["total"],
		"customers":  got.Customers["total"],
		"audit_logs": got.AuditLogs["total"],
	}
	want := map[string]int{"admins": 8, "sites": 12, "products": 15, "customers": 14, "audit_logs": 15}
	for k, w := range want {
		if totals[k] != w {
			t.Errorf("%s total = %d, want %d", k, totals[k], w)
		}
	}
}

func TestOverviewRecentActivity(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequest(http.MethodGet, "/", testutil.SupportUser()))
	rec.AssertStatus(t, http.StatusOK)

	var got overviewResponse
	rec.DecodeJSON(t, &got)

	if len(got.Recent) != 5 {
		t.Fatalf("recent_activity has %d entries, want 5", len(got.Recent))
	}
	for i := 1; i < len(got.Recent); i++ {
		if got.Recent[i].CreatedAt.After(got.Recent[i-1].CreatedAt) {
			t.Errorf("recent_activity not newest-first at index %d", i)
		}
	}
}

func TestRefreshIsSuperAdminOnly(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequest(http.MethodPost, "/refresh", testutil.SupportUser()))
	rec.AssertStatus(t, http.StatusForbidden)
}

func TestRefreshReseedsWithoutReusingIDs(t *testing.T) {
	router, stores := newTestRouter(t)

	// Burn an id before the refresh.
	created := stores.Admins.Create(adminstore.CreateInput{FullName: "Temp Admin", Email: "temp@cartdeck.dev", Role: models.RoleSupport})
	if created.ID != "ADM-009" {
		t.Fatalf("pre-refresh ID = %q", created.ID)
	}

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequest(http.MethodPost, "/refresh", testutil.SuperAdminUser()))
	rec.AssertStatus(t, http.StatusOK)

	var got overviewResponse
	rec.DecodeJSON(t, &got)
	if got.Admins["total"] != 8 {
		t.Errorf("post-refresh admins total = %d, want 8", got.Admins["total"])
	}

	// Ids minted before the refresh never come back.
	next := stores.Admins.Create(adminstore.CreateInput{FullName: "Next Admin", Email: "next@cartdeck.dev", Role: models.RoleSupport})
	if next.ID <= created.ID {
		t.Errorf("post-refresh ID %q not past pre-refresh %q", next.ID, created.ID)
	}
}
