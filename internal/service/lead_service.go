package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/incubtek-portal/internal/domain"
	"github.com/spec-kit/incubtek-portal/internal/events"
	"github.com/spec-kit/incubtek-portal/internal/state"
)

// LeadService covers the public quote form and the commercial follow-up of leads.
type LeadService struct {
	publisher
	store *state.Store
}

// LeadDependencies bundles collaborators for lead service.
type LeadDependencies struct {
	Store      *state.Store
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// LeadInput is the quote-form submission.
type LeadInput struct {
	Name        string
	Company     string
	Email       string
	Phone       string
	Needs       []string
	Description string
}

// NewLeadService constructs the service.
func NewLeadService(deps LeadDependencies) *LeadService {
	return &LeadService{
		publisher: publisher{dispatcher: deps.Dispatcher, logger: nopLogger(deps.Logger)},
		store:     deps.Store,
	}
}

// Submit records a new lead with status Nouveau and announces it. The lead
// is visible in the store before any subscriber runs.
func (s *LeadService) Submit(ctx context.Context, input LeadInput) domain.Lead {
	now := s.store.Now()
	lead := s.store.AddLead(domain.Lead{
		ID:          state.NewID(state.PrefixLead, now),
		Name:        strings.TrimSpace(input.Name),
		Company:     strings.TrimSpace(input.Company),
		Email:       strings.TrimSpace(input.Email),
		Phone:       strings.TrimSpace(input.Phone),
		Needs:       append([]string(nil), input.Needs...),
		Description: input.Description,
		CreatedAt:   now,
		Status:      domain.LeadStatusNew,
	})
	s.logger.Info("lead submitted", zap.String("lead_id", lead.ID), zap.Strings("needs", lead.Needs))

	s.publish(ctx, events.New(events.EventLeadCreated, lead.ID, anonymousActor(), now, events.LeadCreatedPayload{Lead: lead}))
	return lead
}

// List returns every lead, newest first.
func (s *LeadService) List() []domain.Lead {
	return state.SortLeadsByCreatedDesc(s.store.Snapshot().Leads)
}

// UpdateStatus changes the status of a lead. found is false for unknown ids.
func (s *LeadService) UpdateStatus(leadID string, status domain.LeadStatus) (domain.Lead, bool) {
	lead, found := s.store.UpdateLeadStatus(leadID, status)
	if found {
		s.logger.Info("lead status updated", zap.String("lead_id", leadID), zap.String("status", string(status)))
	}
	return lead, found
}

// AddNote records a follow-up note signed with the author's name.
func (s *LeadService) AddNote(leadID, note string, author domain.User) (domain.Lead, bool) {
	return s.store.AddLeadNote(leadID, strings.TrimSpace(note), author.Name)
}
