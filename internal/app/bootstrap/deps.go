// internal/app/bootstrap/deps.go
package bootstrap

import (
	"github.com/vendaro/cartdeck/internal/app/system/seeding"
)

// Deps holds backend dependencies for this WAFFLE app.
//
// This struct is created in ConnectDB and passed to subsequent lifecycle
// hooks: Startup, BuildHandler, and Shutdown. Cartdeck keeps its
// authoritative data in process memory, so instead of database clients
// the struct carries the in-memory stores every feature reads from.
//
// All stores live for the life of the process. Reseeding (at startup or
// via the dashboard's refresh action) swaps their contents in place, so
// handlers never need to be rebuilt.
type Deps struct {
	// Stores bundles the admin, site, product, customer, audit log,
	// and platform settings stores.
	Stores seeding.Stores
}
