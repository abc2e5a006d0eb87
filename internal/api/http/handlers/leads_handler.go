package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/incubtek-portal/internal/api/dto"
	"github.com/spec-kit/incubtek-portal/internal/auth"
	"github.com/spec-kit/incubtek-portal/internal/service"
	apperrors "github.com/spec-kit/incubtek-portal/pkg/util/errorutil"
)

// LeadFormMessage is returned when the quote form is incomplete.
const LeadFormMessage = "Veuillez remplir les champs obligatoires (Nom, Email) et sélectionner au moins un besoin."

// LeadsHandler manages quote requests.
type LeadsHandler struct {
	leads *service.LeadService
}

// NewLeadsHandler constructs handler.
func NewLeadsHandler(leadService *service.LeadService) *LeadsHandler {
	return &LeadsHandler{leads: leadService}
}

// Submit POST /leads.
func (h *LeadsHandler) Submit(c *fiber.Ctx) error {
	var req dto.CreateLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	needs := make([]string, 0, len(req.Needs))
	for _, need := range req.Needs {
		if need = strings.TrimSpace(need); need != "" {
			needs = append(needs, need)
		}
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || len(needs) == 0 {
		return apperrors.NewValidationError(LeadFormMessage, nil)
	}

	lead := h.leads.Submit(c.UserContext(), service.LeadInput{
		Name:        req.Name,
		Company:     req.Company,
		Email:       req.Email,
		Phone:       req.Phone,
		Needs:       needs,
		Description: req.Description,
	})
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": leadResponse(lead)})
}

// List GET /leads.
func (h *LeadsHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": leadResponses(h.leads.List())})
}

// UpdateStatus PATCH /leads/:id/status.
func (h *LeadsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateLeadStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if !req.Status.Valid() {
		return apperrors.NewValidationError("unknown lead status", map[string]any{"status": req.Status})
	}
	lead, found := h.leads.UpdateStatus(c.Params("id"), req.Status)
	if !found {
		return c.SendStatus(http.StatusNoContent)
	}
	return c.JSON(fiber.Map{"data": leadResponse(lead)})
}

// AddNote POST /leads/:id/notes.
func (h *LeadsHandler) AddNote(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.AddLeadNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Note) == "" {
		return apperrors.NewValidationError("note required", nil)
	}
	lead, found := h.leads.AddNote(c.Params("id"), req.Note, principal.User)
	if !found {
		return c.SendStatus(http.StatusNoContent)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": leadResponse(lead)})
}
