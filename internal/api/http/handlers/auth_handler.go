package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/incubtek-portal/internal/api/dto"
	"github.com/spec-kit/incubtek-portal/internal/navigation"
	"github.com/spec-kit/incubtek-portal/internal/service"
	apperrors "github.com/spec-kit/incubtek-portal/pkg/util/errorutil"
)

// AuthHandler exposes session endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.UserLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	result, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": dto.LoginResponse{
		User:    userResponse(result.User),
		Auth:    dto.AuthResponse{Token: result.Session.Token, ExpiresAt: result.Session.ExpiresAt},
		Landing: string(result.Landing),
	}})
}

// Logout handles POST /auth/logout. Tokens are stateless; the client drops
// its token and returns home.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	loc := navigation.NewNavigator().Logout()
	return c.JSON(fiber.Map{"data": dto.LogoutResponse{Landing: string(loc.View)}})
}
