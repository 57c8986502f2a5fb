package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/audit/domain/entities/auditentry"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/profilefields/domain/entities/profilefield"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/eventbus"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/serrors"
)

const defaultFieldType = "text"

type ProfileFieldService struct {
	repo      profilefield.Repository
	publisher eventbus.EventBus
}

func NewProfileFieldService(repo profilefield.Repository, publisher eventbus.EventBus) *ProfileFieldService {
	return &ProfileFieldService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *ProfileFieldService) List(ctx context.Context) ([]*profilefield.Field, error) {
	return s.repo.List(ctx)
}

// Create appends the field at the end of the display order.
func (s *ProfileFieldService) Create(ctx context.Context, field *profilefield.Field) error {
	field.FieldName = strings.TrimSpace(field.FieldName)
	if field.FieldName == "" {
		return serrors.NewValidationError("field_name")
	}
	field.FieldLabel = strings.TrimSpace(field.FieldLabel)
	if field.FieldLabel == "" {
		return serrors.NewValidationError("field_label")
	}
	if field.FieldType == "" {
		field.FieldType = defaultFieldType
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	field.DisplayOrder = count

	if err := s.repo.Create(ctx, field); err != nil {
		return err
	}
	s.publishAudit(ctx, "create_profile_field", field.ID.String(), field.FieldName)
	return nil
}

// Update changes label and flags; the technical field name is not part of
// the update data and stays as created.
func (s *ProfileFieldService) Update(ctx context.Context, id uuid.UUID, data profilefield.UpdateData) error {
	data.FieldLabel = strings.TrimSpace(data.FieldLabel)
	if data.FieldLabel == "" {
		return serrors.NewValidationError("field_label")
	}
	if data.FieldType == "" {
		data.FieldType = defaultFieldType
	}
	if err := s.repo.Update(ctx, id, data); err != nil {
		return err
	}
	s.publishAudit(ctx, "update_profile_field", id.String(), data.FieldLabel)
	return nil
}

func (s *ProfileFieldService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publishAudit(ctx, "delete_profile_field", id.String(), "")
	return nil
}

func (s *ProfileFieldService) publishAudit(ctx context.Context, action, targetID, targetName string) {
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return
	}
	s.publisher.Publish(auditentry.RecordedEvent{
		CompanyID:  companyID,
		Action:     action,
		TargetType: "profile_field",
		TargetID:   targetID,
		TargetName: targetName,
	})
}
