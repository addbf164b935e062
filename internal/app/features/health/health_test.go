// internal/app/features/health/health_test.go
package health

import (
	"net/http"
	"testing"

	"go.uber.org/zap"

	"github.com/vendaro/cartdeck/internal/testutil"
)

func TestCheckSeeded(t *testing.T) {
	h := NewHandler(testutil.SeededStores(t), zap.NewNop())
	router := Routes(h)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"))
	rec.AssertStatus(t, http.StatusOK)

	var resp Response
	rec.DecodeJSON(t, &resp)
	if resp.Status != "ok" || !resp.Seeded {
		t.Errorf("response = %+v", resp)
	}
}

func TestCheckDegradedWhenEmpty(t *testing.T) {
	h := NewHandler(testutil.EmptyStores(), zap.NewNop())
	router := Routes(h)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"))
	rec.AssertStatus(t, http.StatusServiceUnavailable)

	var resp Response
	rec.DecodeJSON(t, &resp)
	if resp.Status != "degraded" || resp.Seeded {
		t.Errorf("response = %+v", resp)
	}
}

func TestReadiness(t *testing.T) {
	h := NewHandler(testutil.EmptyStores(), zap.NewNop())
	router := Routes(h)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/ready"))
	rec.AssertStatus(t, http.StatusServiceUnavailable)

	h = NewHandler(testutil.SeededStores(t), zap.NewNop())
	router = Routes(h)

	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/ready"))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "ready")
}

func TestLivenessIgnoresStores(t *testing.T) {
	h := NewHandler(testutil.EmptyStores(), zap.NewNop())
	router := Routes(h)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/live"))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "alive")
}
