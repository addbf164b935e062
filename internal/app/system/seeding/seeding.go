// internal/app/system/seeding/seeding.go
// Package seeding loads the mock datasets into the in-memory stores.
// It runs at startup and again whenever the dashboard's refresh action
// asks for a clean slate.
package seeding

import (
	"fmt"

	"go.uber.org/zap"

	adminstore "github.com/vendaro/cartdeck/internal/app/store/admins"
	auditstore "github.com/vendaro/cartdeck/internal/app/store/auditlogs"
	customerstore "github.com/vendaro/cartdeck/internal/app/store/customers"
	productstore "github.com/vendaro/cartdeck/internal/app/store/products"
	settingsstore "github.com/vendaro/cartdeck/internal/app/store/settings"
	sitestore "github.com/vendaro/cartdeck/internal/app/store/sites"
	"github.com/vendaro/cartdeck/internal/app/system/authutil"
)

// Stores collects everything SeedAll fills.
type Stores struct {
	Admins    *adminstore.Store
	Sites     *sitestore.Store
	Products  *productstore.Store
	Customers *customerstore.Store
	AuditLogs *auditstore.Store
	Settings  *settingsstore.Store
}

// SeedAll resets every store to the shipped mock datasets. Record id
// counters keep counting across reseeds, so ids from before a refresh
// are never reused. The dev password is hashed once and shared by all
// seeded admin accounts.
//
// Fixtures refer to each other by seed position ("SITE-001" means the
// first seeded site). Reset mints fresh ids every generation, so those
// references are remapped onto the ids actually assigned before the
// referring store is filled.
func SeedAll(s Stores, devPassword string, logger *zap.Logger) error {
	hash, err := authutil.HashPassword(devPassword)
	if err != nil {
		return err
	}

	remap := map[string]string{}
	record := func(prefix string, i int, id string) {
		remap[fmt.Sprintf("%s-%03d", prefix, i+1)] = id
	}
	fresh := func(id string) string {
		if mapped, ok := remap[id]; ok {
			return mapped
		}
		return id
	}

	s.Admins.Records().Reset(adminstore.Seed(hash))
	for i, a := range s.Admins.All() {
		record(adminstore.IDPrefix, i, a.ID)
	}

	s.Sites.Records().Reset(sitestore.Seed())
	for i, site := range s.Sites.All() {
		record(sitestore.IDPrefix, i, site.ID)
	}

	products := productstore.Seed()
	for i := range products {
		products[i].SiteID = fresh(products[i].SiteID)
	}
	s.Products.Records().Reset(products)
	for i, p := range s.Products.All() {
		record(productstore.IDPrefix, i, p.ID)
	}

	customers := customerstore.Seed()
	for i := range customers {
		customers[i].SiteID = fresh(customers[i].SiteID)
	}
	s.Customers.Records().Reset(customers)
	for i, c := range s.Customers.All() {
		record(customerstore.IDPrefix, i, c.ID)
	}

	entries := auditstore.Seed()
	for i := range entries {
		entries[i].RefID = fresh(entries[i].RefID)
		entries[i].Performer.ID = fresh(entries[i].Performer.ID)
	}
	s.AuditLogs.Records().Reset(entries)

	s.Settings.Reset()

	logger.Info("seeded mock data",
		zap.Int("admins", len(s.Admins.All())),
		zap.Int("sites", len(s.Sites.All())),
		zap.Int("products", len(s.Products.All())),
		zap.Int("customers", len(s.Customers.All())),
		zap.Int("audit_logs", len(s.AuditLogs.All())))
	return nil
}
