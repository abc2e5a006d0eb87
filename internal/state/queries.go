package state

import (
	"sort"
	"time"

	"github.com/spec-kit/incubtek-portal/internal/domain"
)

// TicketFilter narrows a ticket listing. Nil fields match everything.
type TicketFilter struct {
	Status      *domain.TicketStatus
	Type        *domain.TicketType
	CompanyID   *string
	AssigneeID  *string
	RequesterID *string
}

// AdminStats feeds the admin dashboard.
type AdminStats struct {
	TotalClients int
	OpenTickets  int
	NewLeads     int
}

// SupportStats feeds the support dashboard.
type SupportStats struct {
	OpenTickets   int
	ResolvedToday int
}

// CompanyAccount groups a company with its client users and contracts.
type CompanyAccount struct {
	Company   domain.Company
	Clients   []domain.User
	Contracts []domain.Contract
}

// FindUser looks a user up by id.
func FindUser(users []domain.User, id string) (domain.User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

// FindUserByEmail looks a user up by exact email.
func FindUserByEmail(users []domain.User, email string) (domain.User, bool) {
	for _, u := range users {
		if u.Email == email {
			return u, true
		}
	}
	return domain.User{}, false
}

// FindCompany looks a company up by id.
func FindCompany(companies []domain.Company, id string) (domain.Company, bool) {
	for _, c := range companies {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Company{}, false
}

// FindTicket looks a ticket up by id.
func FindTicket(tickets []domain.Ticket, id string) (domain.Ticket, bool) {
	for _, t := range tickets {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Ticket{}, false
}

// FindLead looks a lead up by id.
func FindLead(leads []domain.Lead, id string) (domain.Lead, bool) {
	for _, l := range leads {
		if l.ID == id {
			return l, true
		}
	}
	return domain.Lead{}, false
}

// FindContract looks a contract up by id.
func FindContract(contracts []domain.Contract, id string) (domain.Contract, bool) {
	for _, c := range contracts {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Contract{}, false
}

// UsersByRole keeps users with the given role, in list order.
func UsersByRole(users []domain.User, role domain.Role) []domain.User {
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}

// AssignableUsers returns the staff members a ticket can be assigned to.
func AssignableUsers(users []domain.User) []domain.User {
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.Role.IsStaff() {
			out = append(out, u)
		}
	}
	return out
}

// CompanyClients returns the client accounts of a company.
func CompanyClients(users []domain.User, companyID string) []domain.User {
	out := []domain.User{}
	for _, u := range users {
		if u.CompanyID == companyID && u.Role == domain.RoleClient {
			out = append(out, u)
		}
	}
	return out
}

// CompanyContracts returns the contracts held by a company.
func CompanyContracts(contracts []domain.Contract, companyID string) []domain.Contract {
	out := []domain.Contract{}
	for _, c := range contracts {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out
}

// CompanyDocuments returns the documents shared with a company.
func CompanyDocuments(documents []domain.Document, companyID string) []domain.Document {
	out := []domain.Document{}
	for _, d := range documents {
		if d.CompanyID == companyID {
			out = append(out, d)
		}
	}
	return out
}

// CompanyAccounts lists every company with its clients and contracts, in company order.
func CompanyAccounts(s State) []CompanyAccount {
	accounts := make([]CompanyAccount, 0, len(s.Companies))
	for _, c := range s.Companies {
		accounts = append(accounts, CompanyAccount{
			Company:   c,
			Clients:   CompanyClients(s.Users, c.ID),
			Contracts: CompanyContracts(s.Contracts, c.ID),
		})
	}
	return accounts
}

// FilterTickets keeps the tickets matching every set field of filter.
func FilterTickets(tickets []domain.Ticket, filter TicketFilter) []domain.Ticket {
	out := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		if filter.Type != nil && t.Type != *filter.Type {
			continue
		}
		if filter.CompanyID != nil && t.CompanyID != *filter.CompanyID {
			continue
		}
		if filter.AssigneeID != nil && (t.AssigneeID == nil || *t.AssigneeID != *filter.AssigneeID) {
			continue
		}
		if filter.RequesterID != nil && t.RequesterID != *filter.RequesterID {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SortTicketsByCreatedDesc returns a copy ordered newest created first.
func SortTicketsByCreatedDesc(tickets []domain.Ticket) []domain.Ticket {
	out := append([]domain.Ticket(nil), tickets...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// SortTicketsByUpdatedDesc returns a copy ordered most recently updated first.
func SortTicketsByUpdatedDesc(tickets []domain.Ticket) []domain.Ticket {
	out := append([]domain.Ticket(nil), tickets...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

// SortSupportQueue returns a copy with new tickets first, then in-progress
// ones, then the rest; ties are broken by most recent update.
func SortSupportQueue(tickets []domain.Ticket) []domain.Ticket {
	rank := func(s domain.TicketStatus) int {
		switch s {
		case domain.TicketStatusNew:
			return 1
		case domain.TicketStatusInProgress:
			return 2
		default:
			return 3
		}
	}
	out := append([]domain.Ticket(nil), tickets...)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := rank(out[i].Status), rank(out[j].Status)
		if ri != rj {
			return ri < rj
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

// SortLeadsByCreatedDesc returns a copy ordered newest first.
func SortLeadsByCreatedDesc(leads []domain.Lead) []domain.Lead {
	out := append([]domain.Lead(nil), leads...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// ComputeAdminStats counts companies, open tickets and untouched leads.
func ComputeAdminStats(s State) AdminStats {
	stats := AdminStats{TotalClients: len(s.Companies)}
	for _, t := range s.Tickets {
		if t.Status.IsOpen() {
			stats.OpenTickets++
		}
	}
	for _, l := range s.Leads {
		if l.Status == domain.LeadStatusNew {
			stats.NewLeads++
		}
	}
	return stats
}

// ComputeSupportStats counts open tickets and tickets resolved on the
// calendar day of now, in now's location.
func ComputeSupportStats(tickets []domain.Ticket, now time.Time) SupportStats {
	var stats SupportStats
	y, m, d := now.Date()
	for _, t := range tickets {
		if t.Status.IsOpen() {
			stats.OpenTickets++
		}
		if t.Status == domain.TicketStatusResolved {
			ty, tm, td := t.UpdatedAt.In(now.Location()).Date()
			if ty == y && tm == m && td == d {
				stats.ResolvedToday++
			}
		}
	}
	return stats
}
