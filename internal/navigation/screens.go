package navigation

import (
	"github.com/spec-kit/incubtek-portal/internal/catalog"
	"github.com/spec-kit/incubtek-portal/internal/domain"
	"github.com/spec-kit/incubtek-portal/internal/state"
)

// Screen is what the router selected: the view actually shown and the data
// it needs. Data is nil for screens without content and otherwise one of
// the *Screen types below.
type Screen struct {
	View View
	Data any
}

// NotAvailable labels a company or requester that cannot be resolved.
const NotAvailable = "N/A"

// NotFoundMessage is shown when a ticket cannot be displayed.
const NotFoundMessage = "Ticket non trouvé"

type NotFoundScreen struct {
	Message string
}

type ServicesScreen struct {
	Title    string
	Subtitle string
	Services []catalog.Service
}

type QuoteFormScreen struct {
	NeedOptions     []string
	PreselectedNeed string
	Back            View
}

type DashboardScreen struct {
	User      domain.User
	Contracts []domain.Contract
	Tickets   []domain.Ticket
	Documents []domain.Document
}

type NewTicketScreen struct {
	User      domain.User
	Contracts []domain.Contract
	Back      View
}

type ClientTicketDetailScreen struct {
	Ticket domain.Ticket
	User   domain.User
	Back   View
}

type AdminDashboardScreen struct {
	User  domain.User
	Stats state.AdminStats
}

type AdminLeadsScreen struct {
	Leads []domain.Lead
	Admin domain.User
	Back  View
}

type AdminClientsScreen struct {
	Accounts []state.CompanyAccount
	Back     View
}

type AdminHelpdeskScreen struct {
	Tickets         []domain.Ticket
	AssignableUsers []domain.User
	Companies       []domain.Company
	Back            View
}

// SupportTicketRow is a ticket of the support queue with resolved names.
type SupportTicketRow struct {
	Ticket        domain.Ticket
	CompanyName   string
	RequesterName string
}

type SupportDashboardScreen struct {
	User    domain.User
	Tickets []SupportTicketRow
	Stats   state.SupportStats
}

type AdminTicketDetailScreen struct {
	Ticket          domain.Ticket
	User            domain.User
	Requester       domain.User
	AssignableUsers []domain.User
	Back            View
}
