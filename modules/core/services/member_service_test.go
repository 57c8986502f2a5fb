package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/core/domain/entities/member"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/mailer"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/serrors"
)

type mockMemberRepo struct {
	members []*member.Member
}

func (m *mockMemberRepo) List(ctx context.Context) ([]*member.Member, error) {
	return m.members, nil
}

func (m *mockMemberRepo) Create(ctx context.Context, data *member.Member) error {
	data.ID = uuid.New()
	m.members = append(m.members, data)
	return nil
}

func (m *mockMemberRepo) GetByID(ctx context.Context, id uuid.UUID) (*member.Member, error) {
	for _, data := range m.members {
		if data.ID == id {
			return data, nil
		}
	}
	return nil, member.ErrMemberNotFound
}

func (m *mockMemberRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, data := range m.members {
		if data.ID == id {
			m.members = append(m.members[:i], m.members[i+1:]...)
			return nil
		}
	}
	return member.ErrMemberNotFound
}

type mockInvitationRepo struct {
	tokens []*member.InvitationToken
}

func (m *mockInvitationRepo) Create(ctx context.Context, token *member.InvitationToken) error {
	token.ID = uuid.New()
	m.tokens = append(m.tokens, token)
	return nil
}

type recordingMailer struct {
	notes []mailer.NoteNotification
}

func (m *recordingMailer) SendMemberInvitation(ctx context.Context, inv mailer.MemberInvitation) error {
	return nil
}

func (m *recordingMailer) SendNoteNotification(ctx context.Context, note mailer.NoteNotification) error {
	m.notes = append(m.notes, note)
	return nil
}

type failingMailer struct {
	calls int
}

func (m *failingMailer) SendMemberInvitation(ctx context.Context, inv mailer.MemberInvitation) error {
	m.calls++
	return errors.New("delivery endpoint unreachable")
}

func (m *failingMailer) SendNoteNotification(ctx context.Context, note mailer.NoteNotification) error {
	return nil
}

func TestMemberService_InviteSetsPendingAndStoresToken(t *testing.T) {
	repo := &mockMemberRepo{}
	invitations := &mockInvitationRepo{}
	svc := NewMemberService(repo, invitations, mailer.Noop{}, &stubPublisher{})

	data := &member.Member{
		FirstName: "Lena",
		LastName:  "Vogel",
		Email:     "lena.vogel@acme.test",
		Role:      "HSE Manager",
		Status:    "active",
	}
	require.NoError(t, svc.Invite(testContext(), data))
	require.Equal(t, member.StatusPending, data.Status, "invited members always start pending")

	require.Len(t, invitations.tokens, 1)
	token := invitations.tokens[0]
	require.Equal(t, data.ID, token.MemberID)
	require.Equal(t, data.Email, token.Email)
	require.Len(t, token.Token, 64)
	require.False(t, token.ExpiresAt.IsZero())
}

func TestMemberService_InviteSurvivesMailFailure(t *testing.T) {
	repo := &mockMemberRepo{}
	invitations := &mockInvitationRepo{}
	mail := &failingMailer{}
	svc := NewMemberService(repo, invitations, mail, &stubPublisher{})

	data := &member.Member{Email: "x@acme.test", Role: "Employee"}
	require.NoError(t, svc.Invite(testContext(), data))
	require.Equal(t, 1, mail.calls)
	require.Len(t, repo.members, 1, "the member exists even when the invitation mail fails")
}

func TestMemberService_InviteValidation(t *testing.T) {
	repo := &mockMemberRepo{}
	svc := NewMemberService(repo, &mockInvitationRepo{}, mailer.Noop{}, &stubPublisher{})

	var base *serrors.BaseError
	err := svc.Invite(testContext(), &member.Member{Role: "Employee"})
	require.ErrorAs(t, err, &base)

	err = svc.Invite(testContext(), &member.Member{Email: "x@acme.test"})
	require.ErrorAs(t, err, &base)
	require.Empty(t, repo.members)
}

func TestMemberService_NotifySendsMentionNotice(t *testing.T) {
	data := &member.Member{
		ID:        uuid.New(),
		FirstName: "Lena",
		LastName:  "Vogel",
		Email:     "lena.vogel@acme.test",
	}
	repo := &mockMemberRepo{members: []*member.Member{data}}
	mail := &recordingMailer{}
	svc := NewMemberService(repo, &mockInvitationRepo{}, mail, &stubPublisher{})

	ctx := composables.WithActor(testContext(), composables.Actor{Email: "admin@acme.test", Role: "Admin"})
	require.NoError(t, svc.Notify(ctx, data.ID))

	require.Len(t, mail.notes, 1)
	note := mail.notes[0]
	require.Equal(t, "lena.vogel@acme.test", note.RecipientEmail)
	require.Equal(t, "Lena Vogel", note.RecipientName)
	require.Equal(t, "admin@acme.test", note.SenderName)
	require.Contains(t, note.NoteContent, "mentioned in a note")
}

func TestMemberService_NotifyWithoutActorFallsBackToAdmin(t *testing.T) {
	data := &member.Member{ID: uuid.New(), Email: "x@acme.test"}
	repo := &mockMemberRepo{members: []*member.Member{data}}
	mail := &recordingMailer{}
	svc := NewMemberService(repo, &mockInvitationRepo{}, mail, &stubPublisher{})

	require.NoError(t, svc.Notify(testContext(), data.ID))
	require.Len(t, mail.notes, 1)
	require.Equal(t, "Admin", mail.notes[0].SenderName)
}

func TestMemberService_NotifyUnknownMember(t *testing.T) {
	svc := NewMemberService(&mockMemberRepo{}, &mockInvitationRepo{}, &recordingMailer{}, &stubPublisher{})

	err := svc.Notify(testContext(), uuid.New())
	require.ErrorIs(t, err, member.ErrMemberNotFound)
}
