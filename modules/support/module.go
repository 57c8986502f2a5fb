package support

import (
	"github.com/TheEightboys/hsehubfinal-sub002/modules/support/infrastructure/persistence"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/support/presentation/controllers"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/support/services"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/application"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.RegisterServices(
		services.NewTicketService(persistence.NewTicketRepository(), app.EventPublisher()),
	)
	app.RegisterControllers(
		controllers.NewTicketsController(app),
	)
	return nil
}

func (m *Module) Name() string {
	return "support"
}
