package state

import (
	"time"

	"github.com/spec-kit/incubtek-portal/internal/domain"
)

// UpdateLeadStatus sets the status of the matching lead.
func UpdateLeadStatus(leads []domain.Lead, leadID string, status domain.LeadStatus) []domain.Lead {
	return mapLead(leads, leadID, func(l *domain.Lead) {
		l.Status = status
	})
}

// AddLeadNote prepends an activity note to the matching lead.
func AddLeadNote(leads []domain.Lead, leadID, note, author string, now time.Time) []domain.Lead {
	return mapLead(leads, leadID, func(l *domain.Lead) {
		activity := make([]domain.LeadActivity, 0, len(l.Activity)+1)
		activity = append(activity, domain.LeadActivity{Author: author, Note: note, Timestamp: now})
		l.Activity = append(activity, l.Activity...)
	})
}

// AddLead prepends a fully formed lead.
func AddLead(leads []domain.Lead, lead domain.Lead) []domain.Lead {
	next := make([]domain.Lead, 0, len(leads)+1)
	next = append(next, lead)
	return append(next, leads...)
}

func mapLead(leads []domain.Lead, leadID string, apply func(*domain.Lead)) []domain.Lead {
	next := make([]domain.Lead, len(leads))
	copy(next, leads)
	for i := range next {
		if next[i].ID == leadID {
			apply(&next[i])
		}
	}
	return next
}
