package handlers

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/audit/domain/entities/auditentry"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/audit/services"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/application"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/configuration"
)

type AuditRecorder struct {
	app     application.Application
	service *services.AuditService
	logger  *logrus.Logger
}

func RegisterAuditRecorder(app application.Application) {
	recorder := &AuditRecorder{
		app:     app,
		service: app.Service(services.AuditService{}).(*services.AuditService),
		logger:  configuration.Use().Logger(),
	}
	app.EventPublisher().Subscribe(recorder.onRecorded)
}

func (h *AuditRecorder) onRecorded(event auditentry.RecordedEvent) {
	if h.service == nil || h.app == nil {
		return
	}

	ctx := composables.WithPool(context.Background(), h.app.DB())
	ctx = composables.WithCompanyID(ctx, event.CompanyID)

	if err := h.service.Record(ctx, event); err != nil {
		h.logger.WithError(err).
			WithField("action", event.Action).
			Warn("failed to persist audit entry")
	}
}
