package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/audit/domain/entities/auditentry"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/integrations/domain/entities/integration"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/eventbus"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/serrors"
)

const tokenPrefix = "hse_"

// newToken is swappable so tests get deterministic tokens.
var newToken = func() string {
	return tokenPrefix + strings.ReplaceAll(uuid.New().String(), "-", "")
}

type IntegrationService struct {
	systems   integration.SystemRepository
	tokens    integration.TokenRepository
	publisher eventbus.EventBus
}

func NewIntegrationService(
	systems integration.SystemRepository,
	tokens integration.TokenRepository,
	publisher eventbus.EventBus,
) *IntegrationService {
	return &IntegrationService{
		systems:   systems,
		tokens:    tokens,
		publisher: publisher,
	}
}

func (s *IntegrationService) Token(ctx context.Context) (string, error) {
	return s.tokens.Get(ctx)
}

// GenerateToken mints a fresh token and overwrites the previous one. The
// old token stops working immediately.
func (s *IntegrationService) GenerateToken(ctx context.Context) (string, error) {
	token := newToken()
	if err := s.tokens.Set(ctx, token); err != nil {
		return "", err
	}
	s.publishAudit(ctx, "generate_api_token", "api_token", "", "API Token", map[string]interface{}{
		"action": "regenerated",
	})
	return token, nil
}

func (s *IntegrationService) ListSystems(ctx context.Context) ([]*integration.ExternalSystem, error) {
	return s.systems.List(ctx)
}

func (s *IntegrationService) AddSystem(ctx context.Context, system *integration.ExternalSystem) error {
	system.SystemName = strings.TrimSpace(system.SystemName)
	if system.SystemName == "" {
		return serrors.NewValidationError("name")
	}
	system.Endpoint = strings.TrimSpace(system.Endpoint)
	if system.Endpoint == "" {
		return serrors.NewValidationError("endpoint")
	}
	if system.SystemType == "" {
		system.SystemType = integration.DefaultSystemType
	}
	system.IsActive = true

	if err := s.systems.Create(ctx, system); err != nil {
		return err
	}
	s.publishAudit(ctx, "add_external_system", "external_system", system.ID.String(), system.SystemName, map[string]interface{}{
		"type": system.SystemType,
	})
	return nil
}

func (s *IntegrationService) DeleteSystem(ctx context.Context, id uuid.UUID) error {
	system, err := s.systems.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.publishAudit(ctx, "delete_external_system", "external_system", id.String(), system.SystemName, nil)
	return nil
}

func (s *IntegrationService) publishAudit(ctx context.Context, action, targetType, targetID, targetName string, details map[string]interface{}) {
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return
	}
	s.publisher.Publish(auditentry.RecordedEvent{
		CompanyID:  companyID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		TargetName: targetName,
		Details:    details,
	})
}
