package navigation

import (
	"time"

	"github.com/spec-kit/incubtek-portal/internal/catalog"
	"github.com/spec-kit/incubtek-portal/internal/state"
)

// Router resolves locations into screens.
type Router struct {
	clock    func() time.Time
	location *time.Location
}

// NewRouter returns a Router computing day-based statistics with clock in loc.
func NewRouter(clock func() time.Time, loc *time.Location) *Router {
	if clock == nil {
		clock = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Router{clock: clock, location: loc}
}

type resolver func(r *Router, loc Location, s state.State) Screen

var resolvers = map[View]resolver{
	ViewHome:               func(*Router, Location, state.State) Screen { return home() },
	ViewLogin:              func(*Router, Location, state.State) Screen { return Screen{View: ViewLogin} },
	ViewServicesDemarrage:  (*Router).servicesStartup,
	ViewServicesGestion:    (*Router).servicesManagement,
	ViewQuoteForm:          (*Router).quoteForm,
	ViewDashboard:          (*Router).dashboard,
	ViewNewTicket:          (*Router).newTicket,
	ViewClientTicketDetail: (*Router).clientTicketDetail,
	ViewAdminDashboard:     (*Router).adminDashboard,
	ViewAdminLeads:         (*Router).adminLeads,
	ViewAdminClients:       (*Router).adminClients,
	ViewAdminHelpdesk:      (*Router).adminHelpdesk,
	ViewSupportDashboard:   (*Router).supportDashboard,
	ViewAdminTicketDetail:  (*Router).adminTicketDetail,
}

// Resolve selects the screen for loc. It is total: an unknown view or a
// failed role gate yields the home screen, and signed-in-only views show the
// login screen to anonymous visitors.
func (r *Router) Resolve(loc Location, s state.State) Screen {
	resolve, ok := resolvers[loc.View]
	if !ok {
		return home()
	}
	access := AccessOf(loc.View)
	if !access.Allows(loc.User) {
		if access == AccessSignedIn {
			return Screen{View: ViewLogin}
		}
		return home()
	}
	return resolve(r, loc, s)
}

func home() Screen {
	return Screen{View: ViewHome}
}

func notFound() Screen {
	return Screen{View: ViewNotFound, Data: NotFoundScreen{Message: NotFoundMessage}}
}

func (r *Router) servicesStartup(Location, state.State) Screen {
	return Screen{View: ViewServicesDemarrage, Data: ServicesScreen{
		Title:    "Solutions de Démarrage",
		Subtitle: "Lancez votre entreprise sur des fondations technologiques solides.",
		Services: catalog.Services(catalog.CategoryStartup),
	}}
}

func (r *Router) servicesManagement(Location, state.State) Screen {
	return Screen{View: ViewServicesGestion, Data: ServicesScreen{
		Title:    "Services de Gestion IT",
		Subtitle: "Optimisez et sécurisez votre infrastructure existante avec nos experts.",
		Services: catalog.Services(catalog.CategoryManagement),
	}}
}

func (r *Router) quoteForm(loc Location, _ state.State) Screen {
	return Screen{View: ViewQuoteForm, Data: QuoteFormScreen{
		NeedOptions:     catalog.NeedOptions(),
		PreselectedNeed: loc.SelectedService,
		Back:            ViewHome,
	}}
}

func (r *Router) dashboard(loc Location, s state.State) Screen {
	user := *loc.User
	tickets := state.FilterTickets(s.Tickets, state.TicketFilter{CompanyID: &user.CompanyID})
	return Screen{View: ViewDashboard, Data: DashboardScreen{
		User:      user,
		Contracts: state.CompanyContracts(s.Contracts, user.CompanyID),
		Tickets:   state.SortTicketsByUpdatedDesc(tickets),
		Documents: state.CompanyDocuments(s.Documents, user.CompanyID),
	}}
}

func (r *Router) newTicket(loc Location, s state.State) Screen {
	user := *loc.User
	return Screen{View: ViewNewTicket, Data: NewTicketScreen{
		User:      user,
		Contracts: state.CompanyContracts(s.Contracts, user.CompanyID),
		Back:      ViewDashboard,
	}}
}

func (r *Router) clientTicketDetail(loc Location, s state.State) Screen {
	if loc.SelectedTicketID == "" {
		return home()
	}
	ticket, ok := state.FindTicket(s.Tickets, loc.SelectedTicketID)
	if !ok || ticket.CompanyID != loc.User.CompanyID {
		return notFound()
	}
	return Screen{View: ViewClientTicketDetail, Data: ClientTicketDetailScreen{
		Ticket: ticket,
		User:   *loc.User,
		Back:   ViewDashboard,
	}}
}

func (r *Router) adminDashboard(loc Location, s state.State) Screen {
	return Screen{View: ViewAdminDashboard, Data: AdminDashboardScreen{
		User:  *loc.User,
		Stats: state.ComputeAdminStats(s),
	}}
}

func (r *Router) adminLeads(loc Location, s state.State) Screen {
	return Screen{View: ViewAdminLeads, Data: AdminLeadsScreen{
		Leads: state.SortLeadsByCreatedDesc(s.Leads),
		Admin: *loc.User,
		Back:  ViewAdminDashboard,
	}}
}

func (r *Router) adminClients(_ Location, s state.State) Screen {
	return Screen{View: ViewAdminClients, Data: AdminClientsScreen{Accounts: state.CompanyAccounts(s), Back: ViewAdminDashboard}}
}

func (r *Router) adminHelpdesk(_ Location, s state.State) Screen {
	return Screen{View: ViewAdminHelpdesk, Data: AdminHelpdeskScreen{
		Tickets:         state.SortTicketsByCreatedDesc(s.Tickets),
		AssignableUsers: state.AssignableUsers(s.Users),
		Companies:       s.Companies,
		Back:            ViewAdminDashboard,
	}}
}

func (r *Router) supportDashboard(loc Location, s state.State) Screen {
	user := *loc.User
	assigned := state.FilterTickets(s.Tickets, state.TicketFilter{AssigneeID: &user.ID})
	queue := state.SortSupportQueue(assigned)

	rows := make([]SupportTicketRow, 0, len(queue))
	for _, t := range queue {
		row := SupportTicketRow{Ticket: t, CompanyName: NotAvailable, RequesterName: NotAvailable}
		if c, ok := state.FindCompany(s.Companies, t.CompanyID); ok {
			row.CompanyName = c.Name
		}
		if u, ok := state.FindUser(s.Users, t.RequesterID); ok {
			row.RequesterName = u.Name
		}
		rows = append(rows, row)
	}

	return Screen{View: ViewSupportDashboard, Data: SupportDashboardScreen{
		User:    user,
		Tickets: rows,
		Stats:   state.ComputeSupportStats(assigned, r.clock().In(r.location)),
	}}
}

func (r *Router) adminTicketDetail(loc Location, s state.State) Screen {
	if loc.SelectedTicketID == "" {
		return home()
	}
	ticket, ok := state.FindTicket(s.Tickets, loc.SelectedTicketID)
	if !ok {
		return notFound()
	}
	requester, ok := state.FindUser(s.Users, ticket.RequesterID)
	if !ok {
		return notFound()
	}
	return Screen{View: ViewAdminTicketDetail, Data: AdminTicketDetailScreen{
		Ticket:          ticket,
		User:            *loc.User,
		Requester:       requester,
		AssignableUsers: state.AssignableUsers(s.Users),
		Back:            TicketDetailBack(loc.User.Role),
	}}
}
