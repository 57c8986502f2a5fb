package services

import (
	"context"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/audit/domain/entities/auditentry"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/medexam/domain/entities/gcode"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/eventbus"
)

// GCodeService manages a company's selected medical examinations. The
// selection is stored denormalized as "CODE - Description" rows; a save
// replaces the whole set in one transaction.
type GCodeService struct {
	repo      gcode.Repository
	publisher eventbus.EventBus
}

func NewGCodeService(repo gcode.Repository, publisher eventbus.EventBus) *GCodeService {
	return &GCodeService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *GCodeService) Catalog() []gcode.Code {
	return gcode.Catalog
}

// Selected returns the selected codes, parsed out of their stored names.
func (s *GCodeService) Selected(ctx context.Context) ([]string, error) {
	names, err := s.repo.ListNames(ctx)
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(names))
	for _, name := range names {
		codes = append(codes, gcode.ParseCode(name))
	}
	return codes, nil
}

// Save replaces the company's selection with the given codes. Saving the
// same set twice leaves the same rows behind.
func (s *GCodeService) Save(ctx context.Context, codes []string) error {
	names := make([]string, 0, len(codes))
	for _, code := range codes {
		names = append(names, gcode.StoredName(code))
	}
	if err := s.repo.Replace(ctx, names); err != nil {
		return err
	}
	s.publishAudit(ctx, len(codes))
	return nil
}

// ToggleAll returns the full catalog when the current selection is partial
// and the empty set when everything is already selected.
func (s *GCodeService) ToggleAll(ctx context.Context) ([]string, error) {
	selected, err := s.Selected(ctx)
	if err != nil {
		return nil, err
	}
	codes := []string{}
	if len(selected) != len(gcode.Catalog) {
		codes = gcode.AllCodes()
	}
	if err := s.Save(ctx, codes); err != nil {
		return nil, err
	}
	return codes, nil
}

func (s *GCodeService) publishAudit(ctx context.Context, count int) {
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return
	}
	s.publisher.Publish(auditentry.RecordedEvent{
		CompanyID:  companyID,
		Action:     "save_g_investigations",
		TargetType: "g_investigation",
		Details:    map[string]interface{}{"count": count},
	})
}
