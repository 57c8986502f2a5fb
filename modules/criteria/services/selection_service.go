package services

import (
	"context"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/criteria/domain/entities/criteria"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/criteria/infrastructure/selectionstore"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
)

// SelectionService keeps the per-company criteria selection set. Every
// mutation writes through to the store before returning; the store is the
// only place the set lives.
type SelectionService struct {
	store selectionstore.Store
	tree  criteria.Repository
}

func NewSelectionService(store selectionstore.Store, tree criteria.Repository) *SelectionService {
	return &SelectionService{
		store: store,
		tree:  tree,
	}
}

func (s *SelectionService) Get(ctx context.Context) ([]string, error) {
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.Get(ctx, companyID)
}

func (s *SelectionService) Toggle(ctx context.Context, id string) ([]string, error) {
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return nil, err
	}
	selection, err := s.store.Get(ctx, companyID)
	if err != nil {
		return nil, err
	}
	selection = criteria.Toggle(selection, id)
	if err := s.store.Save(ctx, companyID, selection); err != nil {
		return nil, err
	}
	return selection, nil
}

// SelectAll selects every criterion of one standard, including the expanded
// section keys. Selections of other standards are untouched.
func (s *SelectionService) SelectAll(ctx context.Context, isoCode string) ([]string, error) {
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return nil, err
	}
	sections, err := s.tree.LoadTree(ctx, isoCode)
	if err != nil {
		return nil, err
	}
	selection, err := s.store.Get(ctx, companyID)
	if err != nil {
		return nil, err
	}
	selection = criteria.SelectAll(selection, isoCode, sections)
	if err := s.store.Save(ctx, companyID, selection); err != nil {
		return nil, err
	}
	return selection, nil
}

// Save writes the given set verbatim; saving the same set twice is a no-op.
func (s *SelectionService) Save(ctx context.Context, ids []string) error {
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return err
	}
	return s.store.Save(ctx, companyID, ids)
}
