package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/audit/domain/entities/auditentry"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/criteria/domain/entities/criteria"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
)

type stubPublisher struct {
	published []interface{}
}

func (p *stubPublisher) Publish(args ...interface{}) {
	p.published = append(p.published, args...)
}

func (p *stubPublisher) Subscribe(handler interface{})   {}
func (p *stubPublisher) Unsubscribe(handler interface{}) {}
func (p *stubPublisher) Clear()                          {}
func (p *stubPublisher) SubscribersCount() int           { return 0 }

func (p *stubPublisher) lastEvent(t *testing.T) auditentry.RecordedEvent {
	t.Helper()
	require.NotEmpty(t, p.published)
	event, ok := p.published[len(p.published)-1].(auditentry.RecordedEvent)
	require.True(t, ok)
	return event
}

func companyContext() (context.Context, uuid.UUID) {
	companyID := uuid.New()
	return composables.WithCompanyID(context.Background(), companyID), companyID
}

type fakeTreeRepo struct {
	sections map[string]*criteria.Section // keyed by isoCode+"/"+sectionNumber
	tree     []*criteria.Section

	maxSortOrder int

	upsertedSections    []*criteria.Section
	upsertedSubsections []*criteria.Subsection
	insertedQuestions   []*criteria.Question

	deletedSubsections     []uuid.UUID
	deletedBySection       []uuid.UUID
	deletedByPrefix        []string
	deletedSections        []uuid.UUID
	deletedStandards       []string
	updatedSubsectionNames map[uuid.UUID]string
}

func newFakeTreeRepo() *fakeTreeRepo {
	return &fakeTreeRepo{
		sections:               map[string]*criteria.Section{},
		updatedSubsectionNames: map[uuid.UUID]string{},
	}
}

func (r *fakeTreeRepo) addSection(isoCode, number string) *criteria.Section {
	section := &criteria.Section{ID: uuid.New(), ISOCode: isoCode, SectionNumber: number}
	r.sections[isoCode+"/"+number] = section
	r.tree = append(r.tree, section)
	return section
}

func (r *fakeTreeRepo) LoadTree(ctx context.Context, isoCode string) ([]*criteria.Section, error) {
	var out []*criteria.Section
	for _, section := range r.tree {
		if section.ISOCode == isoCode {
			out = append(out, section)
		}
	}
	return out, nil
}

func (r *fakeTreeRepo) GetSectionByNumber(ctx context.Context, isoCode, sectionNumber string) (*criteria.Section, error) {
	section, ok := r.sections[isoCode+"/"+sectionNumber]
	if !ok {
		return nil, criteria.ErrSectionNotFound
	}
	return section, nil
}

func (r *fakeTreeRepo) MaxSubsectionSortOrder(ctx context.Context, sectionID uuid.UUID) (int, error) {
	return r.maxSortOrder, nil
}

func (r *fakeTreeRepo) UpsertSection(ctx context.Context, section *criteria.Section) error {
	if section.ID == uuid.Nil {
		section.ID = uuid.New()
	}
	r.sections[section.ISOCode+"/"+section.SectionNumber] = section
	r.upsertedSections = append(r.upsertedSections, section)
	return nil
}

func (r *fakeTreeRepo) UpsertSubsection(ctx context.Context, sub *criteria.Subsection) error {
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	r.upsertedSubsections = append(r.upsertedSubsections, sub)
	return nil
}

func (r *fakeTreeRepo) InsertQuestion(ctx context.Context, question *criteria.Question) error {
	r.insertedQuestions = append(r.insertedQuestions, question)
	return nil
}

func (r *fakeTreeRepo) DeleteSubsection(ctx context.Context, id uuid.UUID) error {
	r.deletedSubsections = append(r.deletedSubsections, id)
	return nil
}

func (r *fakeTreeRepo) DeleteSubsections(ctx context.Context, ids []uuid.UUID) error {
	r.deletedSubsections = append(r.deletedSubsections, ids...)
	return nil
}

func (r *fakeTreeRepo) DeleteSubsectionsBySection(ctx context.Context, sectionID uuid.UUID) error {
	r.deletedBySection = append(r.deletedBySection, sectionID)
	return nil
}

func (r *fakeTreeRepo) DeleteSubsectionsByPrefix(ctx context.Context, isoCode, prefix string) error {
	r.deletedByPrefix = append(r.deletedByPrefix, isoCode+"/"+prefix)
	return nil
}

func (r *fakeTreeRepo) DeleteSection(ctx context.Context, id uuid.UUID) error {
	r.deletedSections = append(r.deletedSections, id)
	return nil
}

func (r *fakeTreeRepo) DeleteStandardSections(ctx context.Context, isoCode string) error {
	r.deletedStandards = append(r.deletedStandards, isoCode)
	return nil
}

func (r *fakeTreeRepo) UpdateSectionTitle(ctx context.Context, id uuid.UUID, title string) error {
	return nil
}

func (r *fakeTreeRepo) UpdateSubsectionTitle(ctx context.Context, id uuid.UUID, title string) error {
	r.updatedSubsectionNames[id] = title
	return nil
}

func TestTreeService_AddCustomCriterion(t *testing.T) {
	repo := newFakeTreeRepo()
	repo.addSection("ISO_45001", "3")
	repo.maxSortOrder = 5
	publisher := &stubPublisher{}
	service := NewTreeService(repo, publisher)
	ctx, companyID := companyContext()

	sub, err := service.AddCustomCriterion(ctx, "ISO_45001", "3.9", "Arbeitsmittelprüfung")
	require.NoError(t, err)
	require.Equal(t, "3.9", sub.SubsectionNumber)
	require.Equal(t, 6, sub.SortOrder)
	require.NotNil(t, sub.CompanyID)
	require.Equal(t, companyID, *sub.CompanyID)

	event := publisher.lastEvent(t)
	require.Equal(t, "add_custom_criterion", event.Action)
	require.Equal(t, "3", event.Details["section"])
}

func TestTreeService_AddCustomCriterion_OutOfRangeLandsInSectionSeven(t *testing.T) {
	repo := newFakeTreeRepo()
	hosting := repo.addSection("ISO_45001", "7")
	publisher := &stubPublisher{}
	service := NewTreeService(repo, publisher)
	ctx, _ := companyContext()

	sub, err := service.AddCustomCriterion(ctx, "ISO_45001", "9.1", "Eigene Anforderung")
	require.NoError(t, err)
	require.Equal(t, hosting.ID, sub.SectionID)
	require.Equal(t, "9.1", sub.SubsectionNumber)
}

func TestTreeService_AddCustomCriterion_Validation(t *testing.T) {
	repo := newFakeTreeRepo()
	service := NewTreeService(repo, &stubPublisher{})
	ctx, _ := companyContext()

	_, err := service.AddCustomCriterion(ctx, "ISO_45001", "  ", "Titel")
	require.Error(t, err)
	_, err = service.AddCustomCriterion(ctx, "ISO_45001", "1.1", "")
	require.Error(t, err)
	require.Empty(t, repo.upsertedSubsections)
}

func TestTreeService_DeleteSectionGroup_Numeric(t *testing.T) {
	repo := newFakeTreeRepo()
	section := repo.addSection("ISO_45001", "4")
	service := NewTreeService(repo, &stubPublisher{})
	ctx, _ := companyContext()

	require.NoError(t, service.DeleteSectionGroup(ctx, "ISO_45001", "4"))
	require.Equal(t, []uuid.UUID{section.ID}, repo.deletedBySection)
	require.Equal(t, []uuid.UUID{section.ID}, repo.deletedSections)
	require.Empty(t, repo.deletedByPrefix)
}

func TestTreeService_DeleteSectionGroup_NonNumericUsesPrefix(t *testing.T) {
	repo := newFakeTreeRepo()
	service := NewTreeService(repo, &stubPublisher{})
	ctx, _ := companyContext()

	// Custom groups like "9" have no own section row; they go away by
	// number prefix across the standard.
	require.NoError(t, service.DeleteSectionGroup(ctx, "ISO_45001", "9"))
	require.Equal(t, []string{"ISO_45001/9"}, repo.deletedByPrefix)
	require.Empty(t, repo.deletedSections)

	require.NoError(t, service.DeleteSectionGroup(ctx, "ISO_45001", "A"))
	require.Equal(t, []string{"ISO_45001/9", "ISO_45001/A"}, repo.deletedByPrefix)
}

func TestTreeService_DeleteSubsections_EmptyBatchIsNoop(t *testing.T) {
	repo := newFakeTreeRepo()
	publisher := &stubPublisher{}
	service := NewTreeService(repo, publisher)
	ctx, _ := companyContext()

	require.NoError(t, service.DeleteSubsections(ctx, nil))
	require.Empty(t, repo.deletedSubsections)
	require.Empty(t, publisher.published)
}

func TestTreeService_ImportStandard(t *testing.T) {
	repo := newFakeTreeRepo()
	publisher := &stubPublisher{}
	service := NewTreeService(repo, publisher)
	ctx, _ := companyContext()

	result, err := service.ImportStandard(ctx, "ISO_45001")
	require.NoError(t, err)
	require.Equal(t, "ISO_45001", result.ISOCode)
	require.Equal(t, 8, result.Sections)
	require.Equal(t, 40, result.Subsections)
	require.Len(t, repo.upsertedSections, 8)
	require.Len(t, repo.upsertedSubsections, 40)
	require.Equal(t, "import_standard", publisher.lastEvent(t).Action)
}

func TestTreeService_ImportStandard_SectionOnlyBundles(t *testing.T) {
	repo := newFakeTreeRepo()
	service := NewTreeService(repo, &stubPublisher{})
	ctx, _ := companyContext()

	for _, isoCode := range []string{"ISO_9001", "ISO_14001", "ISO_50001"} {
		result, err := service.ImportStandard(ctx, isoCode)
		require.NoError(t, err)
		require.Equal(t, 7, result.Sections)
		require.Zero(t, result.Subsections)
	}
}

func TestTreeService_ReimportStandard_DropsFirst(t *testing.T) {
	repo := newFakeTreeRepo()
	service := NewTreeService(repo, &stubPublisher{})
	ctx, _ := companyContext()

	_, err := service.ReimportStandard(ctx, "ISO_45001")
	require.NoError(t, err)
	require.Equal(t, []string{"ISO_45001"}, repo.deletedStandards)
	require.Len(t, repo.upsertedSections, 8)
}

func TestTreeService_ApplyGermanTranslations(t *testing.T) {
	repo := newFakeTreeRepo()
	section := repo.addSection("ISO_45001", "1")
	section.Title = "Kontext der Organisation"
	stale := &criteria.Subsection{
		ID:               uuid.New(),
		SectionID:        section.ID,
		SubsectionNumber: "1.1",
		Title:            "Identify external and internal issues",
	}
	current := &criteria.Subsection{
		ID:               uuid.New(),
		SectionID:        section.ID,
		SubsectionNumber: "1.2",
		Title:            "Interessierte Parteien und deren Anforderungen",
	}
	section.Subsections = []*criteria.Subsection{stale, current}

	service := NewTreeService(repo, &stubPublisher{})
	ctx, _ := companyContext()

	updated, err := service.ApplyGermanTranslations(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, updated)
	require.Equal(t, "Externe und interne Themen identifizieren", repo.updatedSubsectionNames[stale.ID])
	require.NotContains(t, repo.updatedSubsectionNames, current.ID)
}
