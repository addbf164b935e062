// internal/app/store/sites/seed.go
package sites

import (
	"time"

	"github.com/vendaro/cartdeck/internal/domain/models"
)

// Seed returns the mock site dataset the panels ship with.
func Seed() []models.Site {
	now := time.Now()
	at := func(daysAgo int) time.Time { return now.AddDate(0, 0, -daysAgo) }

	return []models.Site{
		{Name: "Velvet Thread", Slug: "velvet-thread", OwnerEmail: "owner@velvetthread.com", Industry: "fashion", Plan: models.PlanGrowth, Status: models.SiteStatusActive, Description: "<p>Independent fashion boutique for sustainable knitwear.</p>", CreatedAt: at(400)},
		{Name: "Circuit Hub", Slug: "circuit-hub", OwnerEmail: "sales@circuithub.io", Industry: "electronics", Plan: models.PlanEnterprise, Status: models.SiteStatusActive, Description: "<p>Refurbished laptops and components with a 2-year warranty.</p>", CreatedAt: at(350)},
		{Name: "Glow Atelier", Slug: "glow-atelier", OwnerEmail: "hello@glowatelier.com", Industry: "beauty", Plan: models.PlanStarter, Status: models.SiteStatusActive, Description: "<p>Korean skincare, curated weekly.</p>", CreatedAt: at(290)},
		{Name: "Fresh Crate", Slug: "fresh-crate", OwnerEmail: "support@freshcrate.co", Industry: "groceries", Plan: models.PlanGrowth, Status: models.SiteStatusSuspended, Description: "<p>Same-day grocery delivery in the metro area.</p>", CreatedAt: at(250)},
		{Name: "Nordic Nest Home", Slug: "nordic-nest-home", OwnerEmail: "contact@nordicnest.se", Industry: "home_goods", Plan: models.PlanGrowth, Status: models.SiteStatusActive, Description: "<p>Scandinavian furniture and lighting.</p>", CreatedAt: at(210)},
		{Name: "Peak Performance Gear", Slug: "peak-performance-gear", OwnerEmail: "team@peakgear.com", Industry: "sports", Plan: models.PlanEnterprise, Status: models.SiteStatusActive, Description: "<p>Trail running and alpine equipment.</p>", CreatedAt: at(170)},
		{Name: "Bloom & Board", Slug: "bloom-and-board", OwnerEmail: "hi@bloomandboard.com", Industry: "home_goods", Plan: models.PlanFree, Status: models.SiteStatusPending, Description: "<p>Hand-built planters and shelving.</p>", CreatedAt: at(40)},
		{Name: "Pixel Parts", Slug: "pixel-parts", OwnerEmail: "orders@pixelparts.dev", Industry: "electronics", Plan: models.PlanStarter, Status: models.SiteStatusActive, Description: "<p>Mechanical keyboard kits and keycaps.</p>", CreatedAt: at(120)},
		{Name: "Cedar & Sage", Slug: "cedar-and-sage", OwnerEmail: "shop@cedarsage.com", Industry: "beauty", Plan: models.PlanFree, Status: models.SiteStatusPending, Description: "<p>Small-batch soaps and candles.</p>", CreatedAt: at(15)},
		{Name: "Urban Pedal", Slug: "urban-pedal", OwnerEmail: "info@urbanpedal.nl", Industry: "sports", Plan: models.PlanStarter, Status: models.SiteStatusSuspended, Description: "<p>City bikes and commuter accessories.</p>", CreatedAt: at(95)},
		{Name: "Maison Petite", Slug: "maison-petite", OwnerEmail: "bonjour@maisonpetite.fr", Industry: "fashion", Plan: models.PlanGrowth, Status: models.SiteStatusActive, Description: "<p>Children's clothing from organic cotton.</p>", CreatedAt: at(75)},
		{Name: "Daily Basket", Slug: "daily-basket", OwnerEmail: "care@dailybasket.in", Industry: "groceries", Plan: models.PlanEnterprise, Status: models.SiteStatusActive, Description: "<p>Pantry staples delivered on subscription.</p>", CreatedAt: at(60)},
	}
}
