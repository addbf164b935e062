// internal/app/store/products/seed.go
package products

import (
	"time"

	"github.com/vendaro/cartdeck/internal/domain/models"
)

// Seed returns the mock product catalog the panels ship with. SiteID
// values refer to the seeded sites by position (SITE-001 onward).
func Seed() []models.Product {
	now := time.Now()
	at := func(daysAgo int) time.Time { return now.AddDate(0, 0, -daysAgo) }

	return []models.Product{
		{SiteID: "SITE-001", Name: "Merino Crew Sweater", SKU: "VT-KNIT-001", Category: "apparel", PriceCents: 12900, Stock: 34, Status: models.ProductStatusActive, Description: "<p>Mid-weight merino crew neck.</p>", CreatedAt: at(300)},
		{SiteID: "SITE-001", Name: "Alpaca Scarf", SKU: "VT-ACC-014", Category: "accessories", PriceCents: 5900, Stock: 3, Status: models.ProductStatusActive, Description: "<p>Hand-loomed alpaca blend.</p>", CreatedAt: at(240)},
		{SiteID: "SITE-002", Name: "ThinkPad X1 Carbon (Refurb)", SKU: "CH-LAP-220", Category: "computers", PriceCents: 84900, Stock: 12, Status: models.ProductStatusActive, Description: "<p>Grade A refurbished, 16GB RAM.</p>", CreatedAt: at(220)},
		{SiteID: "SITE-002", Name: "USB-C Dock 90W", SKU: "CH-ACC-087", Category: "accessories", PriceCents: 15900, Stock: 0, Status: models.ProductStatusOutOfStock, Description: "<p>Dual 4K output, 90W passthrough.</p>", CreatedAt: at(190)},
		{SiteID: "SITE-003", Name: "Snail Mucin Essence", SKU: "GA-SKIN-031", Category: "skincare", PriceCents: 2400, Stock: 88, Status: models.ProductStatusActive, Description: "<p>96% snail secretion filtrate.</p>", CreatedAt: at(150)},
		{SiteID: "SITE-003", Name: "Rice Water Cleanser", SKU: "GA-SKIN-044", Category: "skincare", PriceCents: 1800, Stock: 4, Status: models.ProductStatusActive, Description: "<p>Low-pH gel cleanser.</p>", CreatedAt: at(130)},
		{SiteID: "SITE-005", Name: "Oak Floor Lamp", SKU: "NN-LGT-012", Category: "lighting", PriceCents: 21900, Stock: 9, Status: models.ProductStatusActive, Description: "<p>Solid oak tripod with linen shade.</p>", CreatedAt: at(110)},
		{SiteID: "SITE-005", Name: "Walnut Side Table", SKU: "NN-FRN-033", Category: "furniture", PriceCents: 34900, Stock: 0, Status: models.ProductStatusOutOfStock, Description: "<p>Restock expected next month.</p>", CreatedAt: at(100)},
		{SiteID: "SITE-006", Name: "Trail Runner GTX", SKU: "PP-SHOE-101", Category: "footwear", PriceCents: 17900, Stock: 41, Status: models.ProductStatusActive, Description: "<p>Waterproof trail shoe, 8mm drop.</p>", CreatedAt: at(80)},
		{SiteID: "SITE-006", Name: "Ultralight Wind Shell", SKU: "PP-JKT-077", Category: "apparel", PriceCents: 13900, Stock: 16, Status: models.ProductStatusDraft, Description: "<p>98g packable wind shell.</p>", CreatedAt: at(20)},
		{SiteID: "SITE-008", Name: "65% Keyboard Kit", SKU: "PX-KBD-650", Category: "computers", PriceCents: 11900, Stock: 27, Status: models.ProductStatusActive, Description: "<p>Hot-swap PCB, aluminum case.</p>", CreatedAt: at(55)},
		{SiteID: "SITE-008", Name: "Artisan Keycap Set", SKU: "PX-CAP-012", Category: "accessories", PriceCents: 7400, Stock: 2, Status: models.ProductStatusActive, Description: "<p>PBT dye-sub, 142 keys.</p>", CreatedAt: at(35)},
		{SiteID: "SITE-011", Name: "Organic Cotton Romper", SKU: "MP-BABY-021", Category: "apparel", PriceCents: 3900, Stock: 52, Status: models.ProductStatusActive, Description: "<p>GOTS certified, sizes 0-24m.</p>", CreatedAt: at(28)},
		{SiteID: "SITE-012", Name: "Cold Brew Concentrate", SKU: "DB-BEV-009", Category: "food", PriceCents: 1600, Stock: 120, Status: models.ProductStatusActive, Description: "<p>1L bottle, 30-day shelf life.</p>", CreatedAt: at(10)},
		{SiteID: "SITE-012", Name: "Heirloom Pasta Sampler", SKU: "DB-FOOD-044", Category: "food", PriceCents: 2900, Stock: 0, Status: models.ProductStatusDraft, Description: "<p>Launching with the autumn box.</p>", CreatedAt: at(3)},
	}
}
