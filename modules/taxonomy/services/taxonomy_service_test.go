package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/audit/domain/entities/auditentry"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/taxonomy/domain/entities/taxonomy"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/serrors"
)

type stubPublisher struct {
	published []interface{}
}

func (s *stubPublisher) Publish(args ...interface{}) {
	s.published = append(s.published, args...)
}
func (s *stubPublisher) Subscribe(handler interface{})   {}
func (s *stubPublisher) Unsubscribe(handler interface{}) {}
func (s *stubPublisher) Clear()                          {}
func (s *stubPublisher) SubscribersCount() int           { return 0 }

type mockTaxonomyRepo struct {
	created []string
	updated []string
	deleted []uuid.UUID
}

func (m *mockTaxonomyRepo) List(ctx context.Context, col taxonomy.Collection) ([]*taxonomy.Item, error) {
	return nil, nil
}
func (m *mockTaxonomyRepo) Create(ctx context.Context, col taxonomy.Collection, item *taxonomy.Item) error {
	item.ID = uuid.New()
	m.created = append(m.created, item.Name)
	return nil
}
func (m *mockTaxonomyRepo) Update(ctx context.Context, col taxonomy.Collection, item *taxonomy.Item) error {
	m.updated = append(m.updated, item.Name)
	return nil
}
func (m *mockTaxonomyRepo) Delete(ctx context.Context, col taxonomy.Collection, id uuid.UUID) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func companyContext() context.Context {
	return composables.WithCompanyID(context.Background(), uuid.New())
}

func TestTaxonomyService_CreateRejectsEmptyName(t *testing.T) {
	repo := &mockTaxonomyRepo{}
	svc := NewTaxonomyService(repo, &stubPublisher{})
	col, _ := taxonomy.CollectionByKey("departments")

	_, err := svc.Create(companyContext(), col, "   ")
	require.Error(t, err)

	var base *serrors.BaseError
	require.ErrorAs(t, err, &base)
	require.Equal(t, "VALIDATION_REQUIRED", base.Code)
	require.Empty(t, repo.created, "repository should not be called for empty names")
}

func TestTaxonomyService_CreateTrimsAndPublishes(t *testing.T) {
	repo := &mockTaxonomyRepo{}
	pub := &stubPublisher{}
	svc := NewTaxonomyService(repo, pub)
	col, _ := taxonomy.CollectionByKey("job-roles")

	item, err := svc.Create(companyContext(), col, "  Safety Officer ")
	require.NoError(t, err)
	require.Equal(t, "Safety Officer", item.Name)

	require.Len(t, pub.published, 1)
	event, ok := pub.published[0].(auditentry.RecordedEvent)
	require.True(t, ok)
	require.Equal(t, "create_job_role", event.Action)
	require.Equal(t, "job_role", event.TargetType)
}

func TestTaxonomyService_DeletePublishesAudit(t *testing.T) {
	repo := &mockTaxonomyRepo{}
	pub := &stubPublisher{}
	svc := NewTaxonomyService(repo, pub)
	col, _ := taxonomy.CollectionByKey("risk-categories")

	id := uuid.New()
	require.NoError(t, svc.Delete(companyContext(), col, id))
	require.Equal(t, []uuid.UUID{id}, repo.deleted)

	require.Len(t, pub.published, 1)
	event := pub.published[0].(auditentry.RecordedEvent)
	require.Equal(t, "delete_risk_category", event.Action)
	require.Equal(t, id.String(), event.TargetID)
}

func TestCollectionByKey_JobRolesTitleColumn(t *testing.T) {
	col, ok := taxonomy.CollectionByKey("job-roles")
	require.True(t, ok)
	require.Equal(t, "job_roles", col.Table)
	require.Equal(t, "title", col.NameColumn)

	_, ok = taxonomy.CollectionByKey("unknown")
	require.False(t, ok)
}
