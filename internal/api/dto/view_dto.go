package dto

import "github.com/spec-kit/incubtek-portal/internal/catalog"

// ViewResponse describes the screen the router selected. View differs from
// Requested when a gate redirected the caller.
type ViewResponse struct {
	Requested string `json:"requested"`
	View      string `json:"view"`
	Data      any    `json:"data,omitempty"`
}

// NotFoundView is shown for missing or hidden tickets.
type NotFoundView struct {
	Message string `json:"message"`
}

// ServicesView lists one catalogue category.
type ServicesView struct {
	Title    string            `json:"title"`
	Subtitle string            `json:"subtitle"`
	Services []catalog.Service `json:"services"`
}

// QuoteFormView prepares the public quote form.
type QuoteFormView struct {
	NeedOptions     []string `json:"need_options"`
	PreselectedNeed string   `json:"preselected_need,omitempty"`
	Back            string   `json:"back"`
}

// DashboardView is the client home.
type DashboardView struct {
	User      UserResponse       `json:"user"`
	Contracts []ContractResponse `json:"contracts"`
	Tickets   []TicketSummary    `json:"tickets"`
	Documents []DocumentResponse `json:"documents"`
}

// NewTicketView prepares the ticket form.
type NewTicketView struct {
	User      UserResponse       `json:"user"`
	Contracts []ContractResponse `json:"contracts"`
	Back      string             `json:"back"`
}

// ClientTicketDetailView shows one ticket to its company.
type ClientTicketDetailView struct {
	Ticket TicketDetailResponse `json:"ticket"`
	User   UserResponse         `json:"user"`
	Back   string               `json:"back"`
}

// AdminStatsResponse feeds the admin dashboard.
type AdminStatsResponse struct {
	TotalClients int `json:"total_clients"`
	OpenTickets  int `json:"open_tickets"`
	NewLeads     int `json:"new_leads"`
}

// AdminDashboardView is the admin home.
type AdminDashboardView struct {
	User  UserResponse       `json:"user"`
	Stats AdminStatsResponse `json:"stats"`
}

// AdminLeadsView lists leads newest first.
type AdminLeadsView struct {
	Leads []LeadResponse `json:"leads"`
	Admin UserResponse   `json:"admin"`
	Back  string         `json:"back"`
}

// AdminClientsView lists company accounts.
type AdminClientsView struct {
	Accounts []CompanyAccountResponse `json:"accounts"`
	Back     string                   `json:"back"`
}

// AdminHelpdeskView lists every ticket newest first.
type AdminHelpdeskView struct {
	Tickets         []TicketSummary   `json:"tickets"`
	AssignableUsers []UserResponse    `json:"assignable_users"`
	Companies       []CompanyResponse `json:"companies"`
	Back            string            `json:"back"`
}

// SupportTicketRow is a row of the support queue.
type SupportTicketRow struct {
	Ticket        TicketSummary `json:"ticket"`
	CompanyName   string        `json:"company_name"`
	RequesterName string        `json:"requester_name"`
}

// SupportStatsResponse feeds the support dashboard.
type SupportStatsResponse struct {
	OpenTickets   int `json:"open_tickets"`
	ResolvedToday int `json:"resolved_today"`
}

// SupportDashboardView is the support home.
type SupportDashboardView struct {
	User    UserResponse         `json:"user"`
	Tickets []SupportTicketRow   `json:"tickets"`
	Stats   SupportStatsResponse `json:"stats"`
}

// AdminTicketDetailView shows one ticket to staff.
type AdminTicketDetailView struct {
	Ticket          TicketDetailResponse `json:"ticket"`
	User            UserResponse         `json:"user"`
	Requester       UserResponse         `json:"requester"`
	AssignableUsers []UserResponse       `json:"assignable_users"`
	Back            string               `json:"back"`
}
