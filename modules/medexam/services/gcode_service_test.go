package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/audit/domain/entities/auditentry"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/medexam/domain/entities/gcode"
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

type mockGCodeRepo struct {
	names    []string
	replaces int
}

func (r *mockGCodeRepo) ListNames(ctx context.Context) ([]string, error) {
	return append([]string(nil), r.names...), nil
}

func (r *mockGCodeRepo) Replace(ctx context.Context, names []string) error {
	r.names = append([]string(nil), names...)
	r.replaces++
	return nil
}

func companyContext() context.Context {
	return composables.WithCompanyID(context.Background(), uuid.New())
}

func TestGCodeService_SaveStoresNamesWithDescriptions(t *testing.T) {
	repo := &mockGCodeRepo{}
	publisher := &stubPublisher{}
	service := NewGCodeService(repo, publisher)

	err := service.Save(companyContext(), []string{"G 20", "G 37", "X 99"})
	require.NoError(t, err)
	require.Equal(t, []string{
		"G 20 - Noise",
		"G 37 - Display screen work",
		"X 99 - X 99",
	}, repo.names)

	require.Len(t, publisher.published, 1)
	event := publisher.published[0].(auditentry.RecordedEvent)
	require.Equal(t, "save_g_investigations", event.Action)
	require.Equal(t, 3, event.Details["count"])
}

func TestGCodeService_SaveIsIdempotent(t *testing.T) {
	repo := &mockGCodeRepo{}
	service := NewGCodeService(repo, &stubPublisher{})
	ctx := companyContext()

	require.NoError(t, service.Save(ctx, []string{"G 25", "G 41"}))
	first := append([]string(nil), repo.names...)
	require.NoError(t, service.Save(ctx, []string{"G 25", "G 41"}))
	require.Equal(t, first, repo.names)
	require.Equal(t, 2, repo.replaces)
}

func TestGCodeService_SelectedParsesStoredNames(t *testing.T) {
	repo := &mockGCodeRepo{names: []string{
		"G 25 - Driving activities",
		"legacy-plain-code",
	}}
	service := NewGCodeService(repo, &stubPublisher{})

	codes, err := service.Selected(companyContext())
	require.NoError(t, err)
	require.Equal(t, []string{"G 25", "legacy-plain-code"}, codes)
}

func TestGCodeService_ToggleAll(t *testing.T) {
	repo := &mockGCodeRepo{}
	service := NewGCodeService(repo, &stubPublisher{})
	ctx := companyContext()

	codes, err := service.ToggleAll(ctx)
	require.NoError(t, err)
	require.Len(t, codes, len(gcode.Catalog))
	require.Len(t, repo.names, len(gcode.Catalog))

	codes, err = service.ToggleAll(ctx)
	require.NoError(t, err)
	require.Empty(t, codes)
	require.Empty(t, repo.names)
}
