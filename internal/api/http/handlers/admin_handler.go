package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/incubtek-portal/internal/api/dto"
	"github.com/spec-kit/incubtek-portal/internal/domain"
	"github.com/spec-kit/incubtek-portal/internal/service"
	"github.com/spec-kit/incubtek-portal/internal/state"
	apperrors "github.com/spec-kit/incubtek-portal/pkg/util/errorutil"
)

// AdminHandler manages client companies, accounts and contracts.
type AdminHandler struct {
	directory *service.DirectoryService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(directory *service.DirectoryService) *AdminHandler {
	return &AdminHandler{directory: directory}
}

// ListCompanies GET /admin/companies.
func (h *AdminHandler) ListCompanies(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": accountResponses(h.directory.Accounts())})
}

// CreateCompany POST /admin/companies.
func (h *AdminHandler) CreateCompany(c *fiber.Ctx) error {
	var req dto.CreateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidationError("name required", nil)
	}
	company := h.directory.AddCompany(req.Name)
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": companyResponse(company)})
}

// CreateUser POST /admin/companies/:id/users.
func (h *AdminHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return apperrors.NewValidationError("name, email, password required", nil)
	}
	user, err := h.directory.AddUser(c.Params("id"), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": userResponse(user)})
}

// UpdateUser PATCH /admin/users/:id.
func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if blank(req.Name) || blank(req.Email) || (req.Password != nil && *req.Password == "") {
		return apperrors.NewValidationError("fields cannot be empty", nil)
	}
	user, found, err := h.directory.UpdateUser(c.Params("id"), service.UserUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	if !found {
		return c.SendStatus(http.StatusNoContent)
	}
	return c.JSON(fiber.Map{"data": userResponse(user)})
}

// CreateContract POST /admin/companies/:id/contracts.
func (h *AdminHandler) CreateContract(c *fiber.Ctx) error {
	var req dto.CreateContractRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.ServiceName) == "" {
		return apperrors.NewValidationError("service_name required", nil)
	}
	expires, err := state.ParseExpiry(req.Expires)
	if err != nil {
		return apperrors.NewValidationError("invalid expires", map[string]any{"expires": req.Expires})
	}
	contract, err := h.directory.AddContract(c.Params("id"), req.ServiceName, req.Details, expires)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": contractResponse(contract)})
}

// UpdateContract PATCH /admin/contracts/:id.
func (h *AdminHandler) UpdateContract(c *fiber.Ctx) error {
	var req dto.UpdateContractRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if blank(req.ServiceName) {
		return apperrors.NewValidationError("service_name cannot be empty", nil)
	}
	patch := domain.ContractPatch{ServiceName: req.ServiceName, Details: req.Details}
	if req.Expires != nil {
		expires, err := state.ParseExpiry(*req.Expires)
		if err != nil {
			return apperrors.NewValidationError("invalid expires", map[string]any{"expires": *req.Expires})
		}
		patch.Expires = &expires
	}
	contract, found := h.directory.UpdateContract(c.Params("id"), patch)
	if !found {
		return c.SendStatus(http.StatusNoContent)
	}
	return c.JSON(fiber.Map{"data": contractResponse(contract)})
}

func blank(s *string) bool {
	return s != nil && strings.TrimSpace(*s) == ""
}
