package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/integrations/domain/entities/integration"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
)

const (
	selectSystemsQuery = `
		SELECT id, company_id, system_name, system_type, endpoint_url, is_active, last_sync_at, created_at
		FROM external_systems
		WHERE company_id = $1
		ORDER BY created_at DESC`
	insertSystemQuery = `
		INSERT INTO external_systems (company_id, system_name, system_type, endpoint_url, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	deleteSystemQuery = `
		DELETE FROM external_systems
		WHERE id = $1 AND company_id = $2
		RETURNING id, company_id, system_name, system_type, endpoint_url, is_active, last_sync_at, created_at`

	selectTokenQuery = `SELECT api_token FROM companies WHERE id = $1`
	updateTokenQuery = `UPDATE companies SET api_token = $1 WHERE id = $2`
)

type ExternalSystemRepository struct{}

func NewExternalSystemRepository() integration.SystemRepository {
	return &ExternalSystemRepository{}
}

func (r *ExternalSystemRepository) List(ctx context.Context) ([]*integration.ExternalSystem, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, selectSystemsQuery, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var systems []*integration.ExternalSystem
	for rows.Next() {
		var system integration.ExternalSystem
		if err := rows.Scan(
			&system.ID,
			&system.CompanyID,
			&system.SystemName,
			&system.SystemType,
			&system.Endpoint,
			&system.IsActive,
			&system.LastSyncAt,
			&system.CreatedAt,
		); err != nil {
			return nil, err
		}
		systems = append(systems, &system)
	}
	return systems, rows.Err()
}

func (r *ExternalSystemRepository) Create(ctx context.Context, system *integration.ExternalSystem) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return err
	}
	system.CompanyID = companyID

	return tx.QueryRow(
		ctx,
		insertSystemQuery,
		system.CompanyID,
		system.SystemName,
		system.SystemType,
		system.Endpoint,
		system.IsActive,
	).Scan(&system.ID, &system.CreatedAt)
}

func (r *ExternalSystemRepository) Delete(ctx context.Context, id uuid.UUID) (*integration.ExternalSystem, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	var system integration.ExternalSystem
	err = tx.QueryRow(ctx, deleteSystemQuery, id, companyID).Scan(
		&system.ID,
		&system.CompanyID,
		&system.SystemName,
		&system.SystemType,
		&system.Endpoint,
		&system.IsActive,
		&system.LastSyncAt,
		&system.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, integration.ErrSystemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &system, nil
}

type APITokenRepository struct{}

func NewAPITokenRepository() integration.TokenRepository {
	return &APITokenRepository{}
}

func (r *APITokenRepository) Get(ctx context.Context) (string, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return "", err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return "", err
	}

	var token *string
	if err := tx.QueryRow(ctx, selectTokenQuery, companyID).Scan(&token); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", integration.ErrNoToken
		}
		return "", err
	}
	if token == nil || *token == "" {
		return "", integration.ErrNoToken
	}
	return *token, nil
}

func (r *APITokenRepository) Set(ctx context.Context, token string) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, updateTokenQuery, token, companyID)
	return err
}
