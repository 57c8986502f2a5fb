package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/audit/domain/entities/auditentry"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/integrations/domain/entities/integration"
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

type mockSystemRepo struct {
	systems []*integration.ExternalSystem
}

func (r *mockSystemRepo) List(ctx context.Context) ([]*integration.ExternalSystem, error) {
	return r.systems, nil
}

func (r *mockSystemRepo) Create(ctx context.Context, system *integration.ExternalSystem) error {
	system.ID = uuid.New()
	r.systems = append([]*integration.ExternalSystem{system}, r.systems...)
	return nil
}

func (r *mockSystemRepo) Delete(ctx context.Context, id uuid.UUID) (*integration.ExternalSystem, error) {
	for i, system := range r.systems {
		if system.ID == id {
			r.systems = append(r.systems[:i], r.systems[i+1:]...)
			return system, nil
		}
	}
	return nil, integration.ErrSystemNotFound
}

type mockTokenRepo struct {
	token string
}

func (r *mockTokenRepo) Get(ctx context.Context) (string, error) {
	if r.token == "" {
		return "", integration.ErrNoToken
	}
	return r.token, nil
}

func (r *mockTokenRepo) Set(ctx context.Context, token string) error {
	r.token = token
	return nil
}

func companyContext() context.Context {
	return composables.WithCompanyID(context.Background(), uuid.New())
}

func TestIntegrationService_GenerateToken(t *testing.T) {
	tokens := &mockTokenRepo{}
	publisher := &stubPublisher{}
	service := NewIntegrationService(&mockSystemRepo{}, tokens, publisher)
	ctx := companyContext()

	token, err := service.GenerateToken(ctx)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(token, "hse_"))
	require.Len(t, token, len("hse_")+32)
	require.Equal(t, token, tokens.token)

	event := publisher.published[0].(auditentry.RecordedEvent)
	require.Equal(t, "generate_api_token", event.Action)

	// Regenerating replaces the stored token.
	second, err := service.GenerateToken(ctx)
	require.NoError(t, err)
	require.NotEqual(t, token, second)
	require.Equal(t, second, tokens.token)
}

func TestIntegrationService_TokenMissing(t *testing.T) {
	service := NewIntegrationService(&mockSystemRepo{}, &mockTokenRepo{}, &stubPublisher{})

	_, err := service.Token(companyContext())
	require.ErrorIs(t, err, integration.ErrNoToken)
}

func TestIntegrationService_AddSystemDefaults(t *testing.T) {
	repo := &mockSystemRepo{}
	publisher := &stubPublisher{}
	service := NewIntegrationService(repo, &mockTokenRepo{}, publisher)
	ctx := companyContext()

	system := &integration.ExternalSystem{
		SystemName: "  SAP EHS  ",
		Endpoint:   "https://sap.example.com/hook",
	}
	require.NoError(t, service.AddSystem(ctx, system))
	require.Equal(t, "SAP EHS", system.SystemName)
	require.Equal(t, "webhook", system.SystemType)
	require.True(t, system.IsActive)

	event := publisher.published[0].(auditentry.RecordedEvent)
	require.Equal(t, "add_external_system", event.Action)
	require.Equal(t, "SAP EHS", event.TargetName)
}

func TestIntegrationService_AddSystemValidation(t *testing.T) {
	repo := &mockSystemRepo{}
	service := NewIntegrationService(repo, &mockTokenRepo{}, &stubPublisher{})
	ctx := companyContext()

	err := service.AddSystem(ctx, &integration.ExternalSystem{Endpoint: "https://x"})
	require.Error(t, err)
	err = service.AddSystem(ctx, &integration.ExternalSystem{SystemName: "X"})
	require.Error(t, err)
	require.Empty(t, repo.systems)
}

func TestIntegrationService_DeleteSystemPublishesName(t *testing.T) {
	repo := &mockSystemRepo{}
	publisher := &stubPublisher{}
	service := NewIntegrationService(repo, &mockTokenRepo{}, publisher)
	ctx := companyContext()

	system := &integration.ExternalSystem{SystemName: "Legacy LIMS", Endpoint: "https://lims"}
	require.NoError(t, service.AddSystem(ctx, system))

	require.NoError(t, service.DeleteSystem(ctx, system.ID))
	require.Empty(t, repo.systems)

	event := publisher.published[len(publisher.published)-1].(auditentry.RecordedEvent)
	require.Equal(t, "delete_external_system", event.Action)
	require.Equal(t, "Legacy LIMS", event.TargetName)

	require.ErrorIs(t, service.DeleteSystem(ctx, system.ID), integration.ErrSystemNotFound)
}
