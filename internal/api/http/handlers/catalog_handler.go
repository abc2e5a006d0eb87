package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/incubtek-portal/internal/catalog"
	apperrors "github.com/spec-kit/incubtek-portal/pkg/util/errorutil"
)

// CatalogHandler serves the public service offer.
type CatalogHandler struct{}

// NewCatalogHandler constructs handler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Services GET /catalog/services?category=.
func (h *CatalogHandler) Services(c *fiber.Ctx) error {
	category := c.Query("category")
	if category == "" {
		return c.JSON(fiber.Map{"data": catalog.All()})
	}
	switch catalog.Category(category) {
	case catalog.CategoryStartup, catalog.CategoryManagement:
		return c.JSON(fiber.Map{"data": catalog.Services(catalog.Category(category))})
	}
	return apperrors.NewValidationError("unknown category", map[string]any{"category": category})
}

// Needs GET /catalog/needs.
func (h *CatalogHandler) Needs(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": catalog.NeedOptions()})
}
