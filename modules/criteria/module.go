package criteria

import (
	"github.com/redis/go-redis/v9"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/criteria/infrastructure/persistence"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/criteria/infrastructure/selectionstore"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/criteria/presentation/controllers"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/criteria/services"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/application"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/configuration"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	conf := configuration.Use()
	var store selectionstore.Store = selectionstore.NewMemoryStore()
	if conf.SelectionStore.RedisURL != "" {
		opts, err := redis.ParseURL(conf.SelectionStore.RedisURL)
		if err != nil {
			return err
		}
		store = selectionstore.NewRedisStore(redis.NewClient(opts))
	}

	treeRepo := persistence.NewCriteriaRepository()
	app.RegisterServices(
		services.NewTreeService(treeRepo, app.EventPublisher()),
		services.NewSelectionService(store, treeRepo),
		services.NewStandardService(persistence.NewStandardRepository(), app.EventPublisher()),
	)
	app.RegisterControllers(
		controllers.NewCriteriaController(app),
		controllers.NewSelectionController(app),
		controllers.NewStandardsController(app),
	)
	return nil
}

func (m *Module) Name() string {
	return "criteria"
}
