// internal/app/features/products/handler_test.go
package products

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"testing"

	"go.uber.org/zap"

	"github.com/vendaro/cartdeck/internal/app/system/auditlog"
	"github.com/vendaro/cartdeck/internal/app/system/listview"
	"github.com/vendaro/cartdeck/internal/domain/models"
	"github.com/vendaro/cartdeck/internal/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	stores := testutil.SeededStores(t)
	auditLogger := auditlog.New(stores.AuditLogs, zap.NewNop(), auditlog.Config{Auth: "off", Admin: "store"})
	h := NewHandler(stores.Products, auditLogger, zap.NewNop())
	return Routes(h, testutil.NewSessionManager(t))
}

func TestProductsRejectSupportRole(t *testing.T) {
	router := newTestRouter(t)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequest(http.MethodGet, "/", testutil.SupportUser()))
	rec.AssertStatus(t, http.StatusForbidden)
}

func TestProductsAllowSiteAdmins(t *testing.T) {
	router := newTestRouter(t)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequest(http.MethodGet, "/", testutil.SiteAdminUser()))
	rec.AssertStatus(t, http.StatusOK)

	var resp struct {
		Records []models.Product `json:"records"`
		Stats   listview.Summary `json:"stats"`
	}
	rec.DecodeJSON(t, &resp)
	if resp.Stats["total"] != 15 {
		t.Errorf("total = %d, want 15", resp.Stats["total"])
	}
}

func TestCreateValidation(t *testing.T) {
	router := newTestRouter(t)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewJSONRequest(http.MethodPost, "/",
		`{"name":"","site_id":"","price_cents":-100,"stock":-1}`, testutil.SiteAdminUser()))
	rec.AssertStatus(t, http.StatusBadRequest)

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	rec.DecodeJSON(t, &resp)
	for _, f := range []string{"name", "site_id", "price_cents", "stock"} {
		if resp.Fields[f] == "" {
			t.Errorf("missing validation message for %s (got %v)", f, resp.Fields)
		}
	}
}

func TestCreateNormalizesSKU(t *testing.T) {
	router := newTestRouter(t)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewJSONRequest(http.MethodPost, "/",
		`{"name":"Linen Apron","site_id":"SITE-005","sku":" ck-apron-01 ","price_cents":3400,"stock":12}`, testutil.SiteAdminUser()))
	rec.AssertStatus(t, http.StatusCreated)

	var created models.Product
	rec.DecodeJSON(t, &created)
	if created.SKU != "CK-APRON-01" {
		t.Errorf("SKU = %q", created.SKU)
	}
	if created.Status != models.ProductStatusDraft {
		t.Errorf("Status = %q, want draft default", created.Status)
	}
}

func TestUpdateRejectsNegativeStock(t *testing.T) {
	router := newTestRouter(t)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewJSONRequest(http.MethodPut, "/PRD-001", `{"stock":-5}`, testutil.SiteAdminUser()))
	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestDeleteProduct(t *testing.T) {
	router := newTestRouter(t)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequest(http.MethodDelete, "/PRD-015", testutil.SuperAdminUser()))
	rec.AssertStatus(t, http.StatusNoContent)

	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequest(http.MethodGet, "/PRD-015", testutil.SuperAdminUser()))
	rec.AssertStatus(t, http.StatusNotFound)
}

func TestExportCSV(t *testing.T) {
	router := newTestRouter(t)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequest(http.MethodGet, "/export.csv?status=active", testutil.SiteAdminUser()))
	rec.AssertStatus(t, http.StatusOK)

	body := rec.Body.Bytes()
	if len(body) < 3 || body[0] != 0xEF || body[1] != 0xBB || body[2] != 0xBF {
		t.Fatal("CSV missing UTF-8 BOM")
	}
	rows, err := csv.NewReader(bytes.NewReader(body[3:])).ReadAll()
	if err != nil {
		t.Fatalf("parse CSV: %v", err)
	}
	if rows[0][4] != "sku" {
		t.Errorf("header = %v", rows[0])
	}
	for _, row := range rows[1:] {
		if row[8] != models.ProductStatusActive {
			t.Errorf("row status = %q", row[8])
		}
	}
}
