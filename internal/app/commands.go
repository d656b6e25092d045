package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"hostbot/internal/adapters/observability"
	"hostbot/internal/automation"
	"hostbot/internal/domain"
)

// Reply is what the bot answered to one guest message.
type Reply struct {
	GuestName string        `json:"guest_name"`
	Intent    domain.Intent `json:"intent"`
	Response  string        `json:"response"`
	Urgent    bool          `json:"urgent"`
}

// AutomationService runs the automation rules and records what was sent.
type AutomationService struct {
	repo domain.ActionRepository
	now  func() time.Time
}

// NewAutomationService returns a service that records actions in r.
// A nil repository disables recording.
func NewAutomationService(r domain.ActionRepository) *AutomationService {
	return &AutomationService{repo: r, now: time.Now}
}

func (s *AutomationService) HandleMessage(ctx context.Context, m domain.GuestMessage) (Reply, error) {
	intent := automation.Classify(m)
	rep := Reply{
		GuestName: m.GuestName,
		Intent:    intent,
		Response:  automation.ResponseFor(intent),
		Urgent:    m.IsUrgent(),
	}
	observability.ObserveIntent(string(intent), rep.Urgent)

	if err := s.record(ctx, domain.Action{
		Kind:      domain.ActionAutoReply,
		GuestName: m.GuestName,
		Intent:    &intent,
		Urgent:    rep.Urgent,
		Body:      rep.Response,
	}); err != nil {
		return Reply{}, fmt.Errorf("record auto reply for %q: %w", m.GuestName, err)
	}
	return rep, nil
}

func (s *AutomationService) SendConfirmation(ctx context.Context, g domain.Guest, p domain.Property, d domain.BookingDates) (domain.Message, error) {
	return s.send(ctx, domain.ActionConfirmation, g, p, automation.Confirmation(g, p, d))
}

func (s *AutomationService) SendCheckoutReminder(ctx context.Context, g domain.Guest, p domain.Property) (domain.Message, error) {
	return s.send(ctx, domain.ActionCheckoutReminder, g, p, automation.CheckoutReminder(g, p))
}

func (s *AutomationService) SendReviewRequest(ctx context.Context, g domain.Guest, p domain.Property) (domain.Message, error) {
	return s.send(ctx, domain.ActionReviewRequest, g, p, automation.ReviewRequest(g, p))
}

func (s *AutomationService) send(ctx context.Context, kind domain.ActionKind, g domain.Guest, p domain.Property, msg domain.Message) (domain.Message, error) {
	observability.ObserveTemplate(string(kind))
	property, subject := p.Name, msg.Subject
	if err := s.record(ctx, domain.Action{
		Kind:      kind,
		GuestName: g.Name,
		Property:  &property,
		Subject:   &subject,
		Body:      msg.Body,
	}); err != nil {
		return domain.Message{}, fmt.Errorf("record %s for %q: %w", kind, g.Name, err)
	}
	return msg, nil
}

func (s *AutomationService) record(ctx context.Context, a domain.Action) error {
	if s.repo == nil {
		return nil
	}
	a.CreatedAt = s.now().UTC()
	id, err := s.repo.LogAction(ctx, a)
	if err != nil {
		return err
	}
	log.Debug().Int64("id", id).Str("kind", string(a.Kind)).Str("guest", a.GuestName).Msg("action recorded")
	return nil
}
