// Package modules lists the dashboard's feature modules.
package modules

import (
	module "github.com/louisbranch/launchboard/internal/services/dashboard/module"
	"github.com/louisbranch/launchboard/internal/services/dashboard/modules/api"
	"github.com/louisbranch/launchboard/internal/services/dashboard/modules/charts"
	"github.com/louisbranch/launchboard/internal/services/dashboard/modules/export"
	"github.com/louisbranch/launchboard/internal/services/dashboard/modules/fragments"
	"github.com/louisbranch/launchboard/internal/services/dashboard/modules/live"
	"github.com/louisbranch/launchboard/internal/services/dashboard/modules/page"
)

// Default returns every module the dashboard serves.
func Default() []module.Module {
	return []module.Module{
		page.New(),
		charts.New(),
		fragments.New(),
		api.New(),
		live.New(),
		export.New(),
	}
}
