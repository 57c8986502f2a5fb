package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/audit/domain/entities/auditentry"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/core/domain/entities/member"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/configuration"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/eventbus"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/mailer"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/serrors"
)

const invitationTTL = 7 * 24 * time.Hour

type MemberService struct {
	repo        member.Repository
	invitations member.InvitationRepository
	mail        mailer.Mailer
	publisher   eventbus.EventBus
}

func NewMemberService(
	repo member.Repository,
	invitations member.InvitationRepository,
	mail mailer.Mailer,
	publisher eventbus.EventBus,
) *MemberService {
	return &MemberService{
		repo:        repo,
		invitations: invitations,
		mail:        mail,
		publisher:   publisher,
	}
}

func (s *MemberService) List(ctx context.Context) ([]*member.Member, error) {
	return s.repo.List(ctx)
}

// Invite creates the member in pending status, stores a setup token and
// mails the invitation. Mail delivery failures are logged and swallowed:
// the member exists either way.
func (s *MemberService) Invite(ctx context.Context, data *member.Member) error {
	data.Email = strings.TrimSpace(data.Email)
	if data.Email == "" {
		return serrors.NewValidationError("email")
	}
	if strings.TrimSpace(data.Role) == "" {
		return serrors.NewValidationError("role")
	}
	data.Status = member.StatusPending

	if err := s.repo.Create(ctx, data); err != nil {
		return err
	}

	token := &member.InvitationToken{
		MemberID:  data.ID,
		Email:     data.Email,
		Token:     strings.ReplaceAll(uuid.New().String()+uuid.New().String(), "-", ""),
		ExpiresAt: time.Now().Add(invitationTTL),
	}
	if err := s.invitations.Create(ctx, token); err != nil {
		return err
	}

	conf := configuration.Use()
	if err := s.mail.SendMemberInvitation(ctx, mailer.MemberInvitation{
		Email:      data.Email,
		Name:       strings.TrimSpace(data.FirstName + " " + data.LastName),
		SetupToken: token.Token,
		SetupURL:   conf.Origin + "/setup-account?token=" + token.Token,
	}); err != nil {
		composables.UseLogger(ctx).WithError(err).
			WithField("email", data.Email).
			Warn("failed to send member invitation")
	}

	s.publishAudit(ctx, "create_team_member", data.ID.String(), data.Email)
	return nil
}

const mentionNotice = "You have been mentioned in a note. Please check HSE Hub for details."

// Notify mails the member a mention notice. Unlike invitations the send is
// not fire-and-forget; delivery failures surface to the caller.
func (s *MemberService) Notify(ctx context.Context, id uuid.UUID) error {
	data, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	sender := "Admin"
	if actor, ok := composables.UseActor(ctx); ok && actor.Email != "" {
		sender = actor.Email
	}
	return s.mail.SendNoteNotification(ctx, mailer.NoteNotification{
		RecipientEmail: data.Email,
		RecipientName:  strings.TrimSpace(data.FirstName + " " + data.LastName),
		NoteContent:    mentionNotice,
		SenderName:     sender,
	})
}

func (s *MemberService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publishAudit(ctx, "delete_team_member", id.String(), "")
	return nil
}

func (s *MemberService) publishAudit(ctx context.Context, action, targetID, targetName string) {
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return
	}
	s.publisher.Publish(auditentry.RecordedEvent{
		CompanyID:  companyID,
		Action:     action,
		TargetType: "team_member",
		TargetID:   targetID,
		TargetName: targetName,
	})
}
