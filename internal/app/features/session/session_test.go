// internal/app/features/session/session_test.go
package session

import (
	"net/http"
	"testing"

	"github.com/vendaro/cartdeck/internal/testutil"
)

func TestSessionAnonymous(t *testing.T) {
	router := Routes(NewHandler())

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.WithCSRFToken(testutil.NewRequest(http.MethodGet, "/")))
	rec.AssertStatus(t, http.StatusOK)

	var resp struct {
		Authenticated bool   `json:"authenticated"`
		AdminID       string `json:"admin_id"`
		CSRFToken     string `json:"csrf_token"`
	}
	rec.DecodeJSON(t, &resp)
	if resp.Authenticated || resp.AdminID != "" {
		t.Errorf("response = %+v", resp)
	}
	// Anonymous callers still get a token for the login form.
	if resp.CSRFToken == "" {
		t.Error("csrf_token missing")
	}
}

func TestSessionAuthenticated(t *testing.T) {
	router := Routes(NewHandler())
	user := testutil.SiteAdminUser()

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequestWithCSRF(http.MethodGet, "/", user))
	rec.AssertStatus(t, http.StatusOK)

	var resp struct {
		Authenticated bool   `json:"authenticated"`
		AdminID       string `json:"admin_id"`
		Email         string `json:"email"`
		Role          string `json:"role"`
	}
	rec.DecodeJSON(t, &resp)
	if !resp.Authenticated || resp.AdminID != user.ID || resp.Email != user.Email || resp.Role != user.Role {
		t.Errorf("response = %+v", resp)
	}
}
