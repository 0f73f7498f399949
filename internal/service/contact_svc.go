package service

import (
	"context"

	"github.com/alexndrfrd/programatorultau/internal/domain"
	"github.com/alexndrfrd/programatorultau/internal/events"
)

type ContactStore interface {
	SaveContact(ctx context.Context, m *domain.ContactMessage) error
}

type ContactSvc struct {
	repo ContactStore
	pub  Publisher
}

func NewContactSvc(repo ContactStore, pub Publisher) *ContactSvc {
	return &ContactSvc{repo: repo, pub: pub}
}

// Submit persists the message first so a notification failure can never
// lose it, then publishes fire-and-forget.
func (s *ContactSvc) Submit(ctx context.Context, name, email, subject, message string) (*domain.ContactMessage, error) {
	m := &domain.ContactMessage{Name: name, Email: email, Subject: subject, Message: message}
	if err := s.repo.SaveContact(ctx, m); err != nil {
		return nil, err
	}
	_ = s.pub.PublishJSON(ctx, events.RKContactSubmitted, events.ContactSubmitted{
		MessageID: m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
	})
	return m, nil
}
