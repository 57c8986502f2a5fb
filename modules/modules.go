package modules

import (
	"github.com/TheEightboys/hsehubfinal-sub002/modules/audit"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/core"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/criteria"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/integrations"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/medexam"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/profilefields"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/support"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/taxonomy"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/application"
)

// BuiltInModules is every module the server loads, in registration order.
// Audit goes first so its recorder is subscribed before any other module
// starts publishing.
var BuiltInModules = []application.Module{
	audit.NewModule(),
	core.NewModule(),
	taxonomy.NewModule(),
	criteria.NewModule(),
	medexam.NewModule(),
	profilefields.NewModule(),
	integrations.NewModule(),
	support.NewModule(),
}

// Load registers all given modules with the application.
func Load(app application.Application, mods ...application.Module) error {
	return application.Load(app, mods...)
}
