package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/incubtek-portal/internal/api/dto"
	"github.com/spec-kit/incubtek-portal/internal/auth"
	"github.com/spec-kit/incubtek-portal/internal/domain"
	"github.com/spec-kit/incubtek-portal/internal/service"
	"github.com/spec-kit/incubtek-portal/internal/state"
	apperrors "github.com/spec-kit/incubtek-portal/pkg/util/errorutil"
)

// StaffTicketsHandler handles helpdesk endpoints for admins and support agents.
type StaffTicketsHandler struct {
	tickets *service.TicketService
	history *service.TicketHistoryService
}

// NewStaffTicketsHandler constructs handler.
func NewStaffTicketsHandler(ticketService *service.TicketService, historyService *service.TicketHistoryService) *StaffTicketsHandler {
	return &StaffTicketsHandler{tickets: ticketService, history: historyService}
}

// ListStaffTickets GET /staff/tickets.
func (h *StaffTicketsHandler) ListStaffTickets(c *fiber.Ctx) error {
	filter, err := parseStaffTicketFilter(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketSummaries(h.tickets.ListStaffTickets(filter))})
}

// GetStaffTicket GET /staff/tickets/:id.
func (h *StaffTicketsHandler) GetStaffTicket(c *fiber.Ctx) error {
	staff, err := staffPrincipal(c)
	if err != nil {
		return err
	}
	ticket, found := h.tickets.GetTicketForUser(staff, c.Params("id"))
	if !found {
		return apperrors.NewNotFound("ticket", map[string]any{"id": c.Params("id")})
	}
	return c.JSON(fiber.Map{"data": ticketDetail(ticket)})
}

// History GET /staff/tickets/:id/history.
func (h *StaffTicketsHandler) History(c *fiber.Ctx) error {
	staff, err := staffPrincipal(c)
	if err != nil {
		return err
	}
	if _, found := h.tickets.GetTicketForUser(staff, c.Params("id")); !found {
		return apperrors.NewNotFound("ticket", map[string]any{"id": c.Params("id")})
	}
	entries, err := h.history.List(c.UserContext(), c.Params("id"))
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.JSON(fiber.Map{"data": historyResponses(entries)})
}

// Assignees GET /staff/assignees.
func (h *StaffTicketsHandler) Assignees(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": userResponses(h.tickets.AssignableUsers())})
}

// UpdateStatus PATCH /staff/tickets/:id/status.
func (h *StaffTicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	staff, err := staffPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.UpdateTicketStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if !req.Status.Valid() {
		return apperrors.NewValidationError("unknown ticket status", map[string]any{"status": req.Status})
	}
	ticket, found := h.tickets.UpdateStatus(c.UserContext(), staff, c.Params("id"), req.Status)
	if !found {
		return c.SendStatus(http.StatusNoContent)
	}
	return c.JSON(fiber.Map{"data": ticketSummary(ticket)})
}

// Assign PATCH /staff/tickets/:id/assignee.
func (h *StaffTicketsHandler) Assign(c *fiber.Ctx) error {
	staff, err := staffPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.AssignTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.AssigneeID != "" && !h.tickets.IsAssignable(req.AssigneeID) {
		return apperrors.NewValidationError("assignee must be a staff member", map[string]any{"assignee_id": req.AssigneeID})
	}
	ticket, found := h.tickets.Assign(c.UserContext(), staff, c.Params("id"), req.AssigneeID)
	if !found {
		return c.SendStatus(http.StatusNoContent)
	}
	return c.JSON(fiber.Map{"data": ticketSummary(ticket)})
}

func staffPrincipal(c *fiber.Ctx) (domain.User, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || !principal.Role().IsStaff() {
		return domain.User{}, apperrors.NewForbidden("staff required")
	}
	return principal.User, nil
}

func parseStaffTicketFilter(c *fiber.Ctx) (state.TicketFilter, error) {
	filter := state.TicketFilter{}
	if s := c.Query("status"); s != "" {
		status := domain.TicketStatus(s)
		if !status.Valid() {
			return filter, apperrors.NewValidationError("unknown ticket status", map[string]any{"status": s})
		}
		filter.Status = &status
	}
	if t := c.Query("type"); t != "" {
		ticketType := domain.TicketType(t)
		if !ticketType.Valid() {
			return filter, apperrors.NewValidationError("unknown ticket type", map[string]any{"type": t})
		}
		filter.Type = &ticketType
	}
	if companyID := c.Query("company_id"); companyID != "" {
		filter.CompanyID = &companyID
	}
	if assignee := c.Query("assignee_id"); assignee != "" {
		filter.AssigneeID = &assignee
	}
	if requester := c.Query("requester_id"); requester != "" {
		filter.RequesterID = &requester
	}
	return filter, nil
}
