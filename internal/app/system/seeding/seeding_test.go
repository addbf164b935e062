// internal/app/system/seeding/seeding_test.go
package seeding

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	adminstore "github.com/vendaro/cartdeck/internal/app/store/admins"
	auditstore "github.com/vendaro/cartdeck/internal/app/store/auditlogs"
	customerstore "github.com/vendaro/cartdeck/internal/app/store/customers"
	productstore "github.com/vendaro/cartdeck/internal/app/store/products"
	settingsstore "github.com/vendaro/cartdeck/internal/app/store/settings"
	sitestore "github.com/vendaro/cartdeck/internal/app/store/sites"
	"github.com/vendaro/cartdeck/internal/app/system/authutil"
)

func newStores() Stores {
	return Stores{
		Admins:    adminstore.New(),
		Sites:     sitestore.New(),
		Products:  productstore.New(),
		Customers: customerstore.New(),
		AuditLogs: auditstore.New(),
		Settings:  settingsstore.New(),
	}
}

func seedTwice(t *testing.T) Stores {
	t.Helper()
	s := newStores()
	for i := 0; i < 2; i++ {
		if err := SeedAll(s, "cartdeck-dev", zap.NewNop()); err != nil {
			t.Fatalf("SeedAll: %v", err)
		}
	}
	return s
}

func TestReseedMintsFreshSiteIDs(t *testing.T) {
	s := seedTwice(t)

	sites := s.Sites.All()
	if len(sites) != 12 {
		t.Fatalf("got %d sites, want 12", len(sites))
	}
	// Second generation continues the counter past the first twelve.
	if sites[0].ID != "SITE-013" {
		t.Errorf("first site id = %q, want SITE-013", sites[0].ID)
	}
}

func TestReseedKeepsSiteReferencesConsistent(t *testing.T) {
	s := seedTwice(t)

	known := map[string]bool{}
	for _, site := range s.Sites.All() {
		known[site.ID] = true
	}

	for _, p := range s.Products.All() {
		if !known[p.SiteID] {
			t.Errorf("product %s references nonexistent site %s", p.ID, p.SiteID)
		}
	}
	for _, c := range s.Customers.All() {
		if !known[c.SiteID] {
			t.Errorf("customer %s references nonexistent site %s", c.ID, c.SiteID)
		}
	}
}

func TestReseedRemapsAuditReferences(t *testing.T) {
	s := seedTwice(t)

	admins := map[string]bool{}
	for _, a := range s.Admins.All() {
		admins[a.ID] = true
	}

	for _, e := range s.AuditLogs.All() {
		if e.Performer.ID != "" && !admins[e.Performer.ID] {
			t.Errorf("entry %s performer %s is not a seeded admin", e.ID, e.Performer.ID)
		}
		if strings.HasPrefix(e.RefID, sitestore.IDPrefix+"-") {
			if _, ok := s.Sites.Get(e.RefID); !ok {
				t.Errorf("entry %s references nonexistent site %s", e.ID, e.RefID)
			}
		}
	}
}

func TestSeedPasswordVerifies(t *testing.T) {
	s := newStores()
	if err := SeedAll(s, "cartdeck-dev", zap.NewNop()); err != nil {
		t.Fatalf("SeedAll: %v", err)
	}

	admin, ok := s.Admins.ByEmail("priya.sharma@cartdeck.dev")
	if !ok {
		t.Fatal("seeded admin missing")
	}
	if !authutil.CheckPassword("cartdeck-dev", admin.PasswordHash) {
		t.Error("seed password does not verify against stored hash")
	}
}
