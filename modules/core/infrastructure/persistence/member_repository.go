package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/core/domain/entities/member"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/core/infrastructure/persistence/models"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
)

type MemberRepository struct{}

func NewMemberRepository() member.Repository {
	return &MemberRepository{}
}

func (r *MemberRepository) List(ctx context.Context) ([]*member.Member, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
		SELECT id, company_id, first_name, last_name, email, role, status, created_at
		FROM team_members
		WHERE company_id = $1
		ORDER BY created_at DESC
	`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*member.Member
	for rows.Next() {
		var row models.TeamMember
		if err := rows.Scan(
			&row.ID,
			&row.CompanyID,
			&row.FirstName,
			&row.LastName,
			&row.Email,
			&row.Role,
			&row.Status,
			&row.CreatedAt,
		); err != nil {
			return nil, err
		}
		members = append(members, toDomainMember(&row))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *MemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*member.Member, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	var row models.TeamMember
	err = tx.QueryRow(ctx, `
		SELECT id, company_id, first_name, last_name, email, role, status, created_at
		FROM team_members
		WHERE id = $1 AND company_id = $2
	`, id, companyID).Scan(
		&row.ID,
		&row.CompanyID,
		&row.FirstName,
		&row.LastName,
		&row.Email,
		&row.Role,
		&row.Status,
		&row.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, member.ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainMember(&row), nil
}

func (r *MemberRepository) Create(ctx context.Context, data *member.Member) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return err
	}
	data.CompanyID = companyID

	return tx.QueryRow(ctx, `
		INSERT INTO team_members (company_id, first_name, last_name, email, role, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`,
		data.CompanyID,
		data.FirstName,
		data.LastName,
		data.Email,
		data.Role,
		data.Status,
	).Scan(&data.ID, &data.CreatedAt)
}

func (r *MemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM team_members WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return member.ErrMemberNotFound
	}
	return nil
}

type InvitationRepository struct{}

func NewInvitationRepository() member.InvitationRepository {
	return &InvitationRepository{}
}

func (r *InvitationRepository) Create(ctx context.Context, token *member.InvitationToken) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	return tx.QueryRow(ctx, `
		INSERT INTO member_invitation_tokens (member_id, email, token, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`,
		token.MemberID,
		token.Email,
		token.Token,
		token.ExpiresAt,
	).Scan(&token.ID, &token.CreatedAt)
}
