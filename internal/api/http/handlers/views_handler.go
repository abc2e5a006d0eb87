package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/incubtek-portal/internal/api/dto"
	"github.com/spec-kit/incubtek-portal/internal/auth"
	"github.com/spec-kit/incubtek-portal/internal/navigation"
	"github.com/spec-kit/incubtek-portal/internal/state"
	apperrors "github.com/spec-kit/incubtek-portal/pkg/util/errorutil"
)

// ViewsHandler resolves portal screens for the caller's session.
type ViewsHandler struct {
	store  *state.Store
	router *navigation.Router
}

// NewViewsHandler constructs handler.
func NewViewsHandler(store *state.Store, router *navigation.Router) *ViewsHandler {
	return &ViewsHandler{store: store, router: router}
}

// Resolve GET /views/:view?payload=.
func (h *ViewsHandler) Resolve(c *fiber.Ctx) error {
	requested := c.Params("view")
	view, ok := navigation.ParseView(requested)
	if !ok {
		return apperrors.NewNotFound("view", map[string]any{"view": requested})
	}

	nav := navigation.NewNavigator()
	if principal, ok := auth.PrincipalFromContext(c); ok {
		nav.Resume(principal.User)
	}
	loc := nav.Navigate(navigation.Route{View: view, Payload: c.Query("payload")})
	screen := h.router.Resolve(loc, h.store.Snapshot())

	return c.JSON(fiber.Map{"data": dto.ViewResponse{
		Requested: string(view),
		View:      string(screen.View),
		Data:      screenData(screen.Data),
	}})
}

func screenData(data any) any {
	switch d := data.(type) {
	case navigation.NotFoundScreen:
		return dto.NotFoundView{Message: d.Message}
	case navigation.ServicesScreen:
		return dto.ServicesView{Title: d.Title, Subtitle: d.Subtitle, Services: d.Services}
	case navigation.QuoteFormScreen:
		return dto.QuoteFormView{NeedOptions: d.NeedOptions, PreselectedNeed: d.PreselectedNeed, Back: string(d.Back)}
	case navigation.DashboardScreen:
		return dto.DashboardView{
			User:      userResponse(d.User),
			Contracts: contractResponses(d.Contracts),
			Tickets:   ticketSummaries(d.Tickets),
			Documents: documentResponses(d.Documents),
		}
	case navigation.NewTicketScreen:
		return dto.NewTicketView{User: userResponse(d.User), Contracts: contractResponses(d.Contracts), Back: string(d.Back)}
	case navigation.ClientTicketDetailScreen:
		return dto.ClientTicketDetailView{Ticket: ticketDetail(d.Ticket), User: userResponse(d.User), Back: string(d.Back)}
	case navigation.AdminDashboardScreen:
		return dto.AdminDashboardView{
			User: userResponse(d.User),
			Stats: dto.AdminStatsResponse{
				TotalClients: d.Stats.TotalClients,
				OpenTickets:  d.Stats.OpenTickets,
				NewLeads:     d.Stats.NewLeads,
			},
		}
	case navigation.AdminLeadsScreen:
		return dto.AdminLeadsView{Leads: leadResponses(d.Leads), Admin: userResponse(d.Admin), Back: string(d.Back)}
	case navigation.AdminClientsScreen:
		return dto.AdminClientsView{Accounts: accountResponses(d.Accounts), Back: string(d.Back)}
	case navigation.AdminHelpdeskScreen:
		return dto.AdminHelpdeskView{
			Tickets:         ticketSummaries(d.Tickets),
			AssignableUsers: userResponses(d.AssignableUsers),
			Companies:       companyResponses(d.Companies),
			Back:            string(d.Back),
		}
	case navigation.SupportDashboardScreen:
		rows := make([]dto.SupportTicketRow, 0, len(d.Tickets))
		for _, r := range d.Tickets {
			rows = append(rows, dto.SupportTicketRow{
				Ticket:        ticketSummary(r.Ticket),
				CompanyName:   r.CompanyName,
				RequesterName: r.RequesterName,
			})
		}
		return dto.SupportDashboardView{
			User:    userResponse(d.User),
			Tickets: rows,
			Stats: dto.SupportStatsResponse{
				OpenTickets:   d.Stats.OpenTickets,
				ResolvedToday: d.Stats.ResolvedToday,
			},
		}
	case navigation.AdminTicketDetailScreen:
		return dto.AdminTicketDetailView{
			Ticket:          ticketDetail(d.Ticket),
			User:            userResponse(d.User),
			Requester:       userResponse(d.Requester),
			AssignableUsers: userResponses(d.AssignableUsers),
			Back:            string(d.Back),
		}
	default:
		return nil
	}
}
