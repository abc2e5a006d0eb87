package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/incubtek-portal/internal/api/dto"
	"github.com/spec-kit/incubtek-portal/internal/auth"
	"github.com/spec-kit/incubtek-portal/internal/domain"
	"github.com/spec-kit/incubtek-portal/internal/service"
	"github.com/spec-kit/incubtek-portal/internal/state"
	apperrors "github.com/spec-kit/incubtek-portal/pkg/util/errorutil"
)

// TicketsHandler manages client ticket endpoints and thread replies.
type TicketsHandler struct {
	service *service.TicketService
	store   *state.Store
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService, store *state.Store) *TicketsHandler {
	return &TicketsHandler{service: ticketService, store: store}
}

// CreateTicket POST /tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return apperrors.NewValidationError("title, description required", nil)
	}
	if req.Type == "" {
		req.Type = domain.TicketTypeIncident
	}
	if req.Urgency == "" {
		req.Urgency = domain.TicketUrgencyMedium
	}
	if !req.Type.Valid() || !req.Urgency.Valid() {
		return apperrors.NewValidationError("invalid type or urgency", map[string]any{"type": req.Type, "urgency": req.Urgency})
	}
	if req.ContractID != nil {
		if *req.ContractID == "" {
			req.ContractID = nil
		} else if contract, ok := state.FindContract(h.store.Snapshot().Contracts, *req.ContractID); !ok || contract.CompanyID != principal.User.CompanyID {
			return apperrors.NewValidationError("unknown contract", map[string]any{"contract_id": *req.ContractID})
		}
	}

	ticket := h.service.CreateTicket(c.UserContext(), principal.User, service.TicketCreateInput{
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Urgency:     req.Urgency,
		ContractID:  req.ContractID,
	})
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": ticketDetail(ticket)})
}

// ListTickets GET /tickets.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	tickets := h.service.ListCompanyTickets(principal.User.CompanyID)
	return c.JSON(fiber.Map{"data": ticketSummaries(tickets)})
}

// GetTicket GET /tickets/:id.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	ticket, found := h.service.GetTicketForUser(principal.User, c.Params("id"))
	if !found {
		return apperrors.NewNotFound("ticket", map[string]any{"id": c.Params("id")})
	}
	return c.JSON(fiber.Map{"data": ticketDetail(ticket)})
}

// AddMessage POST /tickets/:id/messages.
func (h *TicketsHandler) AddMessage(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Content) == "" {
		return apperrors.NewValidationError("content required", nil)
	}
	input := service.MessageInput{Content: req.Content}
	if req.Attachment != nil {
		if strings.TrimSpace(req.Attachment.FileName) == "" {
			return apperrors.NewValidationError("attachment file_name required", nil)
		}
		input.Attachment = &domain.Attachment{FileName: req.Attachment.FileName, Reference: req.Attachment.Reference}
	}
	ticket, found := h.service.AddMessage(c.UserContext(), principal.User, c.Params("id"), input)
	if !found {
		return c.SendStatus(http.StatusNoContent)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": ticketDetail(ticket)})
}
