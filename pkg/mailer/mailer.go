package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// Mailer delivers transactional notifications through an external delivery
// endpoint. Callers treat sends as fire-and-forget: a failed send is logged,
// never surfaced to the user.
type Mailer interface {
	SendMemberInvitation(ctx context.Context, inv MemberInvitation) error
	SendNoteNotification(ctx context.Context, note NoteNotification) error
}

type MemberInvitation struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	SetupToken string `json:"setupToken"`
	SetupURL   string `json:"setupUrl"`
}

type NoteNotification struct {
	RecipientEmail string `json:"recipientEmail"`
	RecipientName  string `json:"recipientName"`
	NoteContent    string `json:"noteContent"`
	SenderName     string `json:"senderName"`
}

type HTTPMailer struct {
	client      *http.Client
	deliveryURL string
	fromName    string
}

func NewHTTPMailer(deliveryURL, fromName string, timeout time.Duration) *HTTPMailer {
	return &HTTPMailer{
		client:      &http.Client{Timeout: timeout},
		deliveryURL: deliveryURL,
		fromName:    fromName,
	}
}

func (m *HTTPMailer) SendMemberInvitation(ctx context.Context, inv MemberInvitation) error {
	payload := struct {
		Type     string           `json:"type"`
		From     string           `json:"from"`
		Delivery MemberInvitation `json:"delivery"`
	}{Type: "member-invitation", From: m.fromName, Delivery: inv}
	return m.post(ctx, payload)
}

func (m *HTTPMailer) SendNoteNotification(ctx context.Context, note NoteNotification) error {
	payload := struct {
		Type     string           `json:"type"`
		From     string           `json:"from"`
		Delivery NoteNotification `json:"delivery"`
	}{Type: "note-notification", From: m.fromName, Delivery: note}
	return m.post(ctx, payload)
}

func (m *HTTPMailer) post(ctx context.Context, payload any) error {
	if m.deliveryURL == "" {
		return errors.New("mailer delivery URL is not configured")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to encode delivery payload")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.deliveryURL, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to build delivery request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "delivery request failed")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("delivery endpoint returned %d", resp.StatusCode)
	}
	return nil
}

// Noop is used when no delivery endpoint is configured and in tests.
type Noop struct{}

func (Noop) SendMemberInvitation(ctx context.Context, inv MemberInvitation) error { return nil }
func (Noop) SendNoteNotification(ctx context.Context, note NoteNotification) error {
	return nil
}
