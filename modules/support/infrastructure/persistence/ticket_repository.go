package persistence

import (
	"context"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/support/domain/entities/ticket"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
)

const (
	selectTicketsQuery = `
		SELECT id, company_id, category, priority, title, description, status, created_at
		FROM support_tickets
		WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT $2`
	insertTicketQuery = `
		INSERT INTO support_tickets (company_id, category, priority, title, description, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
)

type TicketRepository struct{}

func NewTicketRepository() ticket.Repository {
	return &TicketRepository{}
}

func (r *TicketRepository) ListRecent(ctx context.Context, limit int) ([]*ticket.Ticket, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, selectTicketsQuery, companyID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []*ticket.Ticket
	for rows.Next() {
		var t ticket.Ticket
		if err := rows.Scan(
			&t.ID,
			&t.CompanyID,
			&t.Category,
			&t.Priority,
			&t.Title,
			&t.Description,
			&t.Status,
			&t.CreatedAt,
		); err != nil {
			return nil, err
		}
		tickets = append(tickets, &t)
	}
	return tickets, rows.Err()
}

func (r *TicketRepository) Create(ctx context.Context, data *ticket.Ticket) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return err
	}
	data.CompanyID = companyID

	return tx.QueryRow(
		ctx,
		insertTicketQuery,
		data.CompanyID,
		data.Category,
		data.Priority,
		data.Title,
		data.Description,
		data.Status,
	).Scan(&data.ID, &data.CreatedAt)
}
