package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/criteria/domain/entities/criteria"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/criteria/infrastructure/selectionstore"
)

func TestSelectionService_ToggleWritesThrough(t *testing.T) {
	store := selectionstore.NewMemoryStore()
	service := NewSelectionService(store, newFakeTreeRepo())
	ctx, companyID := companyContext()

	selection, err := service.Toggle(ctx, "ISO_45001-abc")
	require.NoError(t, err)
	require.Equal(t, []string{"ISO_45001-abc"}, selection)

	stored, err := store.Get(ctx, companyID)
	require.NoError(t, err)
	require.Equal(t, selection, stored)

	selection, err = service.Toggle(ctx, "ISO_45001-abc")
	require.NoError(t, err)
	require.Empty(t, selection)
}

func TestSelectionService_SelectAllKeepsOtherStandards(t *testing.T) {
	repo := newFakeTreeRepo()
	q1 := repo.addSection("ISO_9001", "1")
	q1.Subsections = []*criteria.Subsection{
		{ID: uuid.New(), SectionID: q1.ID, SubsectionNumber: "1.1"},
		{ID: uuid.New(), SectionID: q1.ID, SubsectionNumber: "1.2"},
	}
	e1 := repo.addSection("ISO_14001", "1")
	e1.Subsections = []*criteria.Subsection{
		{ID: uuid.New(), SectionID: e1.ID, SubsectionNumber: "1.1"},
	}

	store := selectionstore.NewMemoryStore()
	service := NewSelectionService(store, repo)
	ctx, _ := companyContext()

	envSelection, err := service.SelectAll(ctx, "ISO_14001")
	require.NoError(t, err)
	require.Len(t, envSelection, 2) // 1 subsection + 1 section key

	qualitySelection, err := service.SelectAll(ctx, "ISO_9001")
	require.NoError(t, err)

	// The ISO_14001 entries are still there after selecting all of ISO_9001.
	for _, id := range envSelection {
		require.Contains(t, qualitySelection, id)
	}
	require.Contains(t, qualitySelection, "ISO_9001-"+q1.Subsections[0].ID.String())
	require.Contains(t, qualitySelection, "ISO_9001-section-1")
	require.Len(t, qualitySelection, 5)

	// Rerunning converges.
	again, err := service.SelectAll(ctx, "ISO_9001")
	require.NoError(t, err)
	require.Equal(t, qualitySelection, again)
}

func TestSelectionService_SaveAndGet(t *testing.T) {
	store := selectionstore.NewMemoryStore()
	service := NewSelectionService(store, newFakeTreeRepo())
	ctx, _ := companyContext()

	ids := []string{"ISO_45001-a", "ISO_45001-section-1"}
	require.NoError(t, service.Save(ctx, ids))
	require.NoError(t, service.Save(ctx, ids))

	stored, err := service.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, ids, stored)
}

func TestSelectionService_RequiresCompany(t *testing.T) {
	service := NewSelectionService(selectionstore.NewMemoryStore(), newFakeTreeRepo())

	_, err := service.Get(context.Background())
	require.Error(t, err)
}
