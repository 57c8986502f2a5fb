package medexam

import (
	"github.com/TheEightboys/hsehubfinal-sub002/modules/medexam/infrastructure/persistence"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/medexam/presentation/controllers"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/medexam/services"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/application"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.RegisterServices(
		services.NewGCodeService(persistence.NewGCodeRepository(), app.EventPublisher()),
	)
	app.RegisterControllers(
		controllers.NewGCodesController(app),
	)
	return nil
}

func (m *Module) Name() string {
	return "medexam"
}
