package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/audit/domain/entities/auditentry"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/profilefields/domain/entities/profilefield"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/serrors"
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

type mockProfileFieldRepo struct {
	fields  []*profilefield.Field
	updates map[uuid.UUID]profilefield.UpdateData
}

func newMockProfileFieldRepo() *mockProfileFieldRepo {
	return &mockProfileFieldRepo{updates: map[uuid.UUID]profilefield.UpdateData{}}
}

func (r *mockProfileFieldRepo) List(ctx context.Context) ([]*profilefield.Field, error) {
	return r.fields, nil
}

func (r *mockProfileFieldRepo) Count(ctx context.Context) (int, error) {
	return len(r.fields), nil
}

func (r *mockProfileFieldRepo) Create(ctx context.Context, field *profilefield.Field) error {
	field.ID = uuid.New()
	r.fields = append(r.fields, field)
	return nil
}

func (r *mockProfileFieldRepo) Update(ctx context.Context, id uuid.UUID, data profilefield.UpdateData) error {
	for _, field := range r.fields {
		if field.ID == id {
			r.updates[id] = data
			return nil
		}
	}
	return profilefield.ErrFieldNotFound
}

func (r *mockProfileFieldRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, field := range r.fields {
		if field.ID == id {
			r.fields = append(r.fields[:i], r.fields[i+1:]...)
			return nil
		}
	}
	return profilefield.ErrFieldNotFound
}

func companyContext() context.Context {
	return composables.WithCompanyID(context.Background(), uuid.New())
}

func TestProfileFieldService_CreateAppendsDisplayOrder(t *testing.T) {
	repo := newMockProfileFieldRepo()
	service := NewProfileFieldService(repo, &stubPublisher{})
	ctx := companyContext()

	first := &profilefield.Field{FieldName: "emergency_contact", FieldLabel: "Emergency contact"}
	require.NoError(t, service.Create(ctx, first))
	require.Equal(t, 0, first.DisplayOrder)
	require.Equal(t, "text", first.FieldType)

	second := &profilefield.Field{FieldName: "shoe_size", FieldLabel: "Shoe size", FieldType: "number"}
	require.NoError(t, service.Create(ctx, second))
	require.Equal(t, 1, second.DisplayOrder)
	require.Equal(t, "number", second.FieldType)
}

func TestProfileFieldService_CreateValidation(t *testing.T) {
	repo := newMockProfileFieldRepo()
	service := NewProfileFieldService(repo, &stubPublisher{})
	ctx := companyContext()

	err := service.Create(ctx, &profilefield.Field{FieldLabel: "No name"})
	var base *serrors.BaseError
	require.ErrorAs(t, err, &base)
	require.Equal(t, "VALIDATION_REQUIRED", base.Code)

	err = service.Create(ctx, &profilefield.Field{FieldName: "no_label"})
	require.Error(t, err)
	require.Empty(t, repo.fields)
}

func TestProfileFieldService_UpdateCannotTouchFieldName(t *testing.T) {
	repo := newMockProfileFieldRepo()
	publisher := &stubPublisher{}
	service := NewProfileFieldService(repo, publisher)
	ctx := companyContext()

	field := &profilefield.Field{FieldName: "emergency_contact", FieldLabel: "Emergency contact"}
	require.NoError(t, service.Create(ctx, field))

	err := service.Update(ctx, field.ID, profilefield.UpdateData{
		FieldLabel: "Notfallkontakt",
		IsRequired: true,
	})
	require.NoError(t, err)

	// The update payload has no field name; the stored one is untouched.
	require.Equal(t, "emergency_contact", field.FieldName)
	data := repo.updates[field.ID]
	require.Equal(t, "Notfallkontakt", data.FieldLabel)
	require.True(t, data.IsRequired)

	event := publisher.published[len(publisher.published)-1].(auditentry.RecordedEvent)
	require.Equal(t, "update_profile_field", event.Action)
}

func TestProfileFieldService_DeleteMissing(t *testing.T) {
	repo := newMockProfileFieldRepo()
	service := NewProfileFieldService(repo, &stubPublisher{})

	err := service.Delete(companyContext(), uuid.New())
	require.ErrorIs(t, err, profilefield.ErrFieldNotFound)
}
