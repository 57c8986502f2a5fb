package services

import (
	"context"
	"strings"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/audit/domain/entities/auditentry"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/criteria/domain/entities/standard"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/eventbus"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/serrors"
)

type StandardService struct {
	repo      standard.Repository
	publisher eventbus.EventBus
}

func NewStandardService(repo standard.Repository, publisher eventbus.EventBus) *StandardService {
	return &StandardService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *StandardService) List(ctx context.Context) ([]*standard.Selection, error) {
	return s.repo.List(ctx)
}

func (s *StandardService) Predefined() []standard.Predefined {
	return standard.PredefinedStandards
}

// Save upserts the company's selection of a standard; re-saving an already
// selected code updates name and flags in place.
func (s *StandardService) Save(ctx context.Context, data *standard.Selection) error {
	data.ISOCode = strings.TrimSpace(data.ISOCode)
	if data.ISOCode == "" {
		return serrors.NewValidationError("iso_code")
	}
	data.ISOName = strings.TrimSpace(data.ISOName)
	if data.ISOName == "" {
		return serrors.NewValidationError("iso_name")
	}
	if err := s.repo.Upsert(ctx, data); err != nil {
		return err
	}
	s.publishAudit(ctx, "save_iso_standard", data.ISOCode, data.ISOName)
	return nil
}

func (s *StandardService) Delete(ctx context.Context, isoCode string) error {
	if err := s.repo.Delete(ctx, isoCode); err != nil {
		return err
	}
	s.publishAudit(ctx, "delete_iso_standard", isoCode, "")
	return nil
}

func (s *StandardService) publishAudit(ctx context.Context, action, targetID, targetName string) {
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return
	}
	s.publisher.Publish(auditentry.RecordedEvent{
		CompanyID:  companyID,
		Action:     action,
		TargetType: "iso_standard",
		TargetID:   targetID,
		TargetName: targetName,
	})
}
