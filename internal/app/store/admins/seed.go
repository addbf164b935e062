// internal/app/store/admins/seed.go
package admins

import (
	"time"

	"github.com/vendaro/cartdeck/internal/domain/models"
)

// Seed returns the mock admin dataset the panels ship with. Every
// seeded account shares the supplied dev password hash.
func Seed(passwordHash string) []models.Admin {
	now := time.Now()
	at := func(daysAgo int) time.Time { return now.AddDate(0, 0, -daysAgo) }
	login := func(hoursAgo int) *time.Time {
		t := now.Add(-time.Duration(hoursAgo) * time.Hour)
		return &t
	}

	return []models.Admin{
		{FullName: "Priya Sharma", Email: "priya.sharma@cartdeck.dev", Role: models.RoleSuperAdmin, Status: models.StatusActive, PasswordHash: passwordHash, LastLoginAt: login(2), CreatedAt: at(420)},
		{FullName: "Marcus Webb", Email: "marcus.webb@cartdeck.dev", Role: models.RoleSuperAdmin, Status: models.StatusActive, PasswordHash: passwordHash, LastLoginAt: login(26), CreatedAt: at(365)},
		{FullName: "Elena Petrova", Email: "elena.petrova@cartdeck.dev", Role: models.RoleSiteAdmin, Status: models.StatusActive, PasswordHash: passwordHash, LastLoginAt: login(5), CreatedAt: at(200)},
		{FullName: "Daniel Okafor", Email: "daniel.okafor@cartdeck.dev", Role: models.RoleSiteAdmin, Status: models.StatusActive, PasswordHash: passwordHash, LastLoginAt: login(72), CreatedAt: at(180)},
		{FullName: "Sofia Lindqvist", Email: "sofia.lindqvist@cartdeck.dev", Role: models.RoleSiteAdmin, Status: models.StatusInactive, PasswordHash: passwordHash, CreatedAt: at(160)},
		{FullName: "Tomas Ruiz", Email: "tomas.ruiz@cartdeck.dev", Role: models.RoleSupport, Status: models.StatusActive, PasswordHash: passwordHash, LastLoginAt: login(1), CreatedAt: at(90)},
		{FullName: "Mei Chen", Email: "mei.chen@cartdeck.dev", Role: models.RoleSupport, Status: models.StatusActive, PasswordHash: passwordHash, LastLoginAt: login(8), CreatedAt: at(45)},
		{FullName: "Jakub Nowak", Email: "jakub.nowak@cartdeck.dev", Role: models.RoleSupport, Status: models.StatusInactive, PasswordHash: passwordHash, CreatedAt: at(30)},
	}
}
