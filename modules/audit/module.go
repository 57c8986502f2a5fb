package audit

import (
	"github.com/TheEightboys/hsehubfinal-sub002/modules/audit/handlers"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/audit/infrastructure/persistence"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/audit/presentation/controllers"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/audit/services"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/application"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.RegisterServices(
		services.NewAuditService(persistence.NewAuditEntryRepository()),
	)
	app.RegisterControllers(
		controllers.NewAuditController(app),
	)
	handlers.RegisterAuditRecorder(app)
	return nil
}

func (m *Module) Name() string {
	return "audit"
}
