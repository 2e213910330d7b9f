// Package module defines the contract dashboard feature modules implement.
package module

import (
	"log"
	"net/http"

	"github.com/louisbranch/launchboard/internal/launch/view"
	dashi18n "github.com/louisbranch/launchboard/internal/services/dashboard/platform/i18n"
)

// Dependencies carries shared services into module mounts.
type Dependencies struct {
	Views   *view.Service
	Locales dashi18n.Resolver
	Logger  *log.Logger
}

// Mount is a module's HTTP surface. A Prefix ending in "/" owns the whole
// subtree; any other Prefix is an exact path.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module is one feature area of the dashboard.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
