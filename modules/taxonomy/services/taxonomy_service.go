package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/audit/domain/entities/auditentry"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/taxonomy/domain/entities/taxonomy"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/eventbus"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/serrors"
)

type TaxonomyService struct {
	repo      taxonomy.Repository
	publisher eventbus.EventBus
}

func NewTaxonomyService(repo taxonomy.Repository, publisher eventbus.EventBus) *TaxonomyService {
	return &TaxonomyService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *TaxonomyService) List(ctx context.Context, col taxonomy.Collection) ([]*taxonomy.Item, error) {
	return s.repo.List(ctx, col)
}

func (s *TaxonomyService) Create(ctx context.Context, col taxonomy.Collection, name string) (*taxonomy.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, serrors.NewValidationError("name")
	}
	item := &taxonomy.Item{Name: name}
	if err := s.repo.Create(ctx, col, item); err != nil {
		return nil, err
	}
	s.publishAudit(ctx, "create_"+col.Singular, col, item.ID, item.Name)
	return item, nil
}

func (s *TaxonomyService) Update(ctx context.Context, col taxonomy.Collection, id uuid.UUID, name string) (*taxonomy.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, serrors.NewValidationError("name")
	}
	item := &taxonomy.Item{ID: id, Name: name}
	if err := s.repo.Update(ctx, col, item); err != nil {
		return nil, err
	}
	s.publishAudit(ctx, "update_"+col.Singular, col, id, name)
	return item, nil
}

func (s *TaxonomyService) Delete(ctx context.Context, col taxonomy.Collection, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, col, id); err != nil {
		return err
	}
	s.publishAudit(ctx, "delete_"+col.Singular, col, id, "")
	return nil
}

func (s *TaxonomyService) publishAudit(ctx context.Context, action string, col taxonomy.Collection, id uuid.UUID, name string) {
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return
	}
	s.publisher.Publish(auditentry.RecordedEvent{
		CompanyID:  companyID,
		Action:     action,
		TargetType: col.Singular,
		TargetID:   id.String(),
		TargetName: name,
	})
}
