package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ultrapopular/internal/services"
	"ultrapopular/internal/validate"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
}

func (h *CatalogHandler) Products(c *fiber.Ctx) error {
	products, err := h.Catalog.ListProducts()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"products": products})
}

// Stores lists the directory, narrowed to one city when ?city= is given.
func (h *CatalogHandler) Stores(c *fiber.Ctx) error {
	city, ok := validate.City(c.Query("city"))
	if !ok {
		return badRequest(c, "city", c.Query("city"))
	}
	stores, err := h.Catalog.SuggestStores(city)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"stores": stores})
}
