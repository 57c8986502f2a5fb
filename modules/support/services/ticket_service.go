package services

import (
	"context"
	"strings"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/audit/domain/entities/auditentry"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/support/domain/entities/ticket"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/eventbus"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/serrors"
)

type TicketService struct {
	repo      ticket.Repository
	publisher eventbus.EventBus
}

func NewTicketService(repo ticket.Repository, publisher eventbus.EventBus) *TicketService {
	return &TicketService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *TicketService) ListRecent(ctx context.Context) ([]*ticket.Ticket, error) {
	return s.repo.ListRecent(ctx, ticket.RecentLimit)
}

// Submit files a new ticket. Every ticket starts out open regardless of
// what the caller sends.
func (s *TicketService) Submit(ctx context.Context, data *ticket.Ticket) error {
	data.Category = strings.TrimSpace(data.Category)
	if data.Category == "" {
		return serrors.NewValidationError("category")
	}
	data.Title = strings.TrimSpace(data.Title)
	if data.Title == "" {
		return serrors.NewValidationError("title")
	}
	data.Description = strings.TrimSpace(data.Description)
	if data.Description == "" {
		return serrors.NewValidationError("description")
	}
	if data.Priority == "" {
		data.Priority = ticket.DefaultPriority
	}
	data.Status = ticket.StatusOpen

	if err := s.repo.Create(ctx, data); err != nil {
		return err
	}
	s.publishAudit(ctx, data)
	return nil
}

func (s *TicketService) publishAudit(ctx context.Context, data *ticket.Ticket) {
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return
	}
	s.publisher.Publish(auditentry.RecordedEvent{
		CompanyID:  companyID,
		Action:     "submit_support_ticket",
		TargetType: "support_ticket",
		TargetID:   data.ID.String(),
		TargetName: data.Title,
		Details:    map[string]interface{}{"category": data.Category, "priority": data.Priority},
	})
}
