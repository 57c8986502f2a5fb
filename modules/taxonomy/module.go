package taxonomy

import (
	"github.com/TheEightboys/hsehubfinal-sub002/modules/taxonomy/infrastructure/persistence"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/taxonomy/presentation/controllers"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/taxonomy/services"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/application"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.RegisterServices(
		services.NewTaxonomyService(persistence.NewTaxonomyRepository(), app.EventPublisher()),
	)
	app.RegisterControllers(
		controllers.NewTaxonomyController(app),
	)
	return nil
}

func (m *Module) Name() string {
	return "taxonomy"
}
