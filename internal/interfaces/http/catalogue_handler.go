package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ABShowcase/architectural-showcase-portal/internal/application/dto"
	"github.com/ABShowcase/architectural-showcase-portal/pkg/showcase"
)

// Catalogues serves the fixed pick-lists the submission form renders.
// GET /api/catalogues
func Catalogues(c *fiber.Ctx) error {
	return c.JSON(dto.CataloguesResponse{
		ManufacturerCategories: showcase.ManufacturerCategories,
		ArchitectRoles:         showcase.ArchitectRoles,
	})
}
