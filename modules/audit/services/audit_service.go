package services

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/audit/domain/entities/auditentry"
)

type AuditService struct {
	repo auditentry.Repository
}

func NewAuditService(repo auditentry.Repository) *AuditService {
	return &AuditService{repo: repo}
}

func (s *AuditService) List(ctx context.Context, params *auditentry.FindParams) ([]*auditentry.Entry, error) {
	return s.repo.List(ctx, params)
}

func (s *AuditService) Count(ctx context.Context, params *auditentry.FindParams) (int64, error) {
	return s.repo.Count(ctx, params)
}

// Record persists one entry built from a recorded event.
func (s *AuditService) Record(ctx context.Context, event auditentry.RecordedEvent) error {
	var details json.RawMessage
	if event.Details != nil {
		raw, err := json.Marshal(event.Details)
		if err != nil {
			return errors.Wrap(err, "failed to encode audit details")
		}
		details = raw
	}
	return s.repo.Create(ctx, &auditentry.Entry{
		CompanyID:  event.CompanyID,
		Action:     event.Action,
		TargetType: event.TargetType,
		TargetID:   event.TargetID,
		TargetName: event.TargetName,
		Details:    details,
	})
}
