package integrations

import (
	"github.com/TheEightboys/hsehubfinal-sub002/modules/integrations/infrastructure/persistence"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/integrations/presentation/controllers"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/integrations/services"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/application"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.RegisterServices(
		services.NewIntegrationService(
			persistence.NewExternalSystemRepository(),
			persistence.NewAPITokenRepository(),
			app.EventPublisher(),
		),
	)
	app.RegisterControllers(
		controllers.NewIntegrationsController(app),
	)
	return nil
}

func (m *Module) Name() string {
	return "integrations"
}
