package domain

import "time"

// LeadStatus tracks the commercial follow-up of a quote request.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "Nouveau"
	LeadStatusContacted LeadStatus = "Contacté"
	LeadStatusConverted LeadStatus = "Converti"
	LeadStatusLost      LeadStatus = "Perdu"
)

// Valid reports whether s is a known lead status.
func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusConverted, LeadStatusLost:
		return true
	}
	return false
}

// LeadActivity is a follow-up note left on a lead.
type LeadActivity struct {
	Author    string
	Note      string
	Timestamp time.Time
}

// Lead is an inbound quote request submitted through the public form.
// Activity is ordered newest first.
type Lead struct {
	ID          string
	Name        string
	Company     string
	Email       string
	Phone       string
	Needs       []string
	Description string
	CreatedAt   time.Time
	Status      LeadStatus
	Activity    []LeadActivity
}
