// internal/app/store/customers/seed.go
package customers

import (
	"time"

	"github.com/vendaro/cartdeck/internal/domain/models"
)

// Seed returns the mock customer dataset the panels ship with. A few
// records are stamped with the current day so the "new today" card has
// data out of the box.
func Seed() []models.Customer {
	now := time.Now()
	at := func(daysAgo int) time.Time { return now.AddDate(0, 0, -daysAgo) }

	return []models.Customer{
		{SiteID: "SITE-001", FullName: "Amelia Hart", Email: "amelia.hart@example.com", Country: "GB", TotalOrders: 14, TotalSpentCents: 184300, Status: models.CustomerStatusActive, CreatedAt: at(380)},
		{SiteID: "SITE-001", FullName: "Lucas Moreau", Email: "lucas.moreau@example.fr", Country: "FR", TotalOrders: 3, TotalSpentCents: 28700, Status: models.CustomerStatusActive, CreatedAt: at(310)},
		{SiteID: "SITE-002", FullName: "Hana Kobayashi", Email: "hana.k@example.jp", Country: "JP", TotalOrders: 7, TotalSpentCents: 412000, Status: models.CustomerStatusActive, CreatedAt: at(260)},
		{SiteID: "SITE-002", FullName: "Viktor Halvorsen", Email: "viktor.h@example.no", Country: "NO", TotalOrders: 1, TotalSpentCents: 84900, Status: models.CustomerStatusBlocked, CreatedAt: at(230)},
		{SiteID: "SITE-003", FullName: "Isabella Rossi", Email: "isabella.rossi@example.it", Country: "IT", TotalOrders: 22, TotalSpentCents: 96400, Status: models.CustomerStatusActive, CreatedAt: at(200)},
		{SiteID: "SITE-003", FullName: "Noah van Dijk", Email: "noah.vd@example.nl", Country: "NL", TotalOrders: 5, TotalSpentCents: 18200, Status: models.CustomerStatusActive, CreatedAt: at(140)},
		{SiteID: "SITE-005", FullName: "Freya Andersen", Email: "freya.a@example.dk", Country: "DK", TotalOrders: 9, TotalSpentCents: 278600, Status: models.CustomerStatusActive, CreatedAt: at(120)},
		{SiteID: "SITE-006", FullName: "Mateo Alvarez", Email: "mateo.alvarez@example.es", Country: "ES", TotalOrders: 11, TotalSpentCents: 152900, Status: models.CustomerStatusActive, CreatedAt: at(90)},
		{SiteID: "SITE-006", FullName: "Grace Okonkwo", Email: "grace.o@example.ng", Country: "NG", TotalOrders: 2, TotalSpentCents: 31800, Status: models.CustomerStatusBlocked, CreatedAt: at(70)},
		{SiteID: "SITE-008", FullName: "Ethan Park", Email: "ethan.park@example.com", Country: "US", TotalOrders: 6, TotalSpentCents: 54300, Status: models.CustomerStatusActive, CreatedAt: at(50)},
		{SiteID: "SITE-011", FullName: "Clara Becker", Email: "clara.becker@example.de", Country: "DE", TotalOrders: 4, TotalSpentCents: 15600, Status: models.CustomerStatusActive, CreatedAt: at(25)},
		{SiteID: "SITE-012", FullName: "Arjun Mehta", Email: "arjun.mehta@example.in", Country: "IN", TotalOrders: 18, TotalSpentCents: 43200, Status: models.CustomerStatusActive, CreatedAt: at(12)},
		{SiteID: "SITE-012", FullName: "Lina Haddad", Email: "lina.haddad@example.com", Country: "AE", TotalOrders: 0, TotalSpentCents: 0, Status: models.CustomerStatusActive, CreatedAt: now.Add(-2 * time.Hour)},
		{SiteID: "SITE-008", FullName: "Oliver Smith", Email: "oliver.smith@example.com", Country: "US", TotalOrders: 0, TotalSpentCents: 0, Status: models.CustomerStatusActive, CreatedAt: now.Add(-30 * time.Minute)},
	}
}
