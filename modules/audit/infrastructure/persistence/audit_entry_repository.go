package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/audit/domain/entities/auditentry"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/audit/infrastructure/persistence/models"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/repo"
)

type AuditEntryRepository struct{}

func NewAuditEntryRepository() auditentry.Repository {
	return &AuditEntryRepository{}
}

func (r *AuditEntryRepository) List(ctx context.Context, params *auditentry.FindParams) ([]*auditentry.Entry, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	where, args := buildAuditFilters(params, companyID)
	query := `
		SELECT id, company_id, action, target_type, target_id, target_name, details, created_at
		FROM audit_logs
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY created_at DESC
	`
	if params != nil {
		query += " " + repo.FormatLimitOffset(params.Limit, params.Offset)
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*auditentry.Entry
	for rows.Next() {
		var row models.AuditEntry
		if err := rows.Scan(
			&row.ID,
			&row.CompanyID,
			&row.Action,
			&row.TargetType,
			&row.TargetID,
			&row.TargetName,
			&row.Details,
			&row.CreatedAt,
		); err != nil {
			return nil, err
		}
		results = append(results, toDomainAuditEntry(&row))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *AuditEntryRepository) Count(ctx context.Context, params *auditentry.FindParams) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return 0, err
	}
	where, args := buildAuditFilters(params, companyID)

	var count int64
	if err := tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM audit_logs
		WHERE `+strings.Join(where, " AND "),
		args...,
	).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AuditEntryRepository) Create(ctx context.Context, entry *auditentry.Entry) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	details := entry.Details
	if len(details) == 0 {
		details = []byte("{}")
	}

	return tx.QueryRow(
		ctx,
		`INSERT INTO audit_logs (company_id, action, target_type, target_id, target_name, details, created_at)
		 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7)
		 RETURNING id, created_at`,
		entry.CompanyID,
		entry.Action,
		entry.TargetType,
		entry.TargetID,
		entry.TargetName,
		details,
		entry.CreatedAt,
	).Scan(&entry.ID, &entry.CreatedAt)
}

func buildAuditFilters(params *auditentry.FindParams, companyID uuid.UUID) ([]string, []interface{}) {
	where := []string{"company_id = $1"}
	args := []interface{}{companyID}
	argPos := 2
	if params == nil {
		return where, args
	}

	if action := strings.TrimSpace(params.Action); action != "" {
		where = append(where, fmt.Sprintf("action = $%d", argPos))
		args = append(args, action)
		argPos++
	}
	if targetType := strings.TrimSpace(params.TargetType); targetType != "" {
		where = append(where, fmt.Sprintf("target_type = $%d", argPos))
		args = append(args, targetType)
	}
	return where, args
}
