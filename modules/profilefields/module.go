package profilefields

import (
	"github.com/TheEightboys/hsehubfinal-sub002/modules/profilefields/infrastructure/persistence"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/profilefields/presentation/controllers"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/profilefields/services"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/application"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.RegisterServices(
		services.NewProfileFieldService(persistence.NewProfileFieldRepository(), app.EventPublisher()),
	)
	app.RegisterControllers(
		controllers.NewProfileFieldsController(app),
	)
	return nil
}

func (m *Module) Name() string {
	return "profilefields"
}
