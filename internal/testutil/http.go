// internal/testutil/http.go
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/google/uuid"

	"github.com/vendaro/cartdeck/internal/app/system/auth"
	"github.com/vendaro/cartdeck/internal/domain/models"
)

// TestUser represents admin data for testing HTTP handlers.
type TestUser struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// SuperAdminUser returns a TestUser with the super_admin role.
func SuperAdminUser() TestUser {
	return TestUser{
		ID:    uuid.NewString(),
		Name:  "Test Super Admin",
		Email: "super@test.com",
		Role:  models.RoleSuperAdmin,
	}
}

// SiteAdminUser returns a TestUser with the site_admin role.
func SiteAdminUser() TestUser {
	return TestUser{
		ID:    uuid.NewString(),
		Name:  "Test Site Admin",
		Email: "siteadmin@test.com",
		Role:  models.RoleSiteAdmin,
	}
}

// SupportUser returns a TestUser with the support role.
func SupportUser() TestUser {
	return TestUser{
		ID:    uuid.NewString(),
		Name:  "Test Support",
		Email: "support@test.com",
		Role:  models.RoleSupport,
	}
}

// WithUser adds an admin to the request context for testing authenticated
// handlers. This bypasses the session middleware and injects the admin
// directly.
func WithUser(r *http.Request, user TestUser) *http.Request {
	sessionUser := &auth.SessionUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
	return auth.WithTestUser(r, sessionUser)
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewAuthenticatedRequest creates an HTTP request with an admin in context.
func NewAuthenticatedRequest(method, target string, user TestUser) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return WithUser(req, user)
}

// NewJSONRequest creates an HTTP request with a JSON body and an admin in
// context.
func NewJSONRequest(method, target, body string, user TestUser) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return WithUser(req, user)
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertContains checks if the response body contains the expected string.
func (r *ResponseRecorder) AssertContains(t interface{ Errorf(string, ...any) }, expected string) {
	body := r.Body.String()
	if !strings.Contains(body, expected) {
		t.Errorf("response body does not contain %q", expected)
	}
}

// DecodeJSON decodes the response body into dst.
func (r *ResponseRecorder) DecodeJSON(t interface {
	Errorf(string, ...any)
	Fatalf(string, ...any)
}, dst any) {
	if err := json.Unmarshal(r.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response body: %v (body: %s)", err, r.Body.String())
	}
}
