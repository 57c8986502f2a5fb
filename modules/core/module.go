package core

import (
	"github.com/TheEightboys/hsehubfinal-sub002/modules/core/infrastructure/persistence"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/core/presentation/controllers"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/core/services"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/application"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/configuration"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/mailer"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	conf := configuration.Use()
	var mail mailer.Mailer = mailer.Noop{}
	if conf.Mailer.DeliveryURL != "" {
		mail = mailer.NewHTTPMailer(conf.Mailer.DeliveryURL, conf.Mailer.FromName, conf.Mailer.Timeout)
	}

	app.RegisterServices(
		services.NewMemberService(
			persistence.NewMemberRepository(),
			persistence.NewInvitationRepository(),
			mail,
			app.EventPublisher(),
		),
		services.NewRoleService(persistence.NewRoleRepository(), app.EventPublisher()),
		services.NewWorkflowService(persistence.NewWorkflowRepository(), app.EventPublisher()),
	)
	app.RegisterControllers(
		controllers.NewMembersController(app),
		controllers.NewRolesController(app),
		controllers.NewWorkflowsController(app),
	)
	return nil
}

func (m *Module) Name() string {
	return "core"
}
