package persistence

import (
	"github.com/google/uuid"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/audit/domain/entities/auditentry"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/audit/infrastructure/persistence/models"
)

func toDomainAuditEntry(row *models.AuditEntry) *auditentry.Entry {
	entry := &auditentry.Entry{
		ID:         uuid.MustParse(row.ID),
		CompanyID:  uuid.MustParse(row.CompanyID),
		Action:     row.Action,
		TargetType: row.TargetType,
		Details:    row.Details,
		CreatedAt:  row.CreatedAt,
	}
	if row.TargetID != nil {
		entry.TargetID = *row.TargetID
	}
	if row.TargetName != nil {
		entry.TargetName = *row.TargetName
	}
	return entry
}
