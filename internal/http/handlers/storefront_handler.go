package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"ultrapopular/internal/domain"
	applog "ultrapopular/internal/log"
	"ultrapopular/internal/services"
	"ultrapopular/internal/session"
)

type paymentOption struct {
	Value string
	Label string
}

type StorefrontHandler struct {
	Catalog  *services.CatalogService
	Sessions *session.Store
}

// Home renders the single storefront page with the shopper's current state.
func (h *StorefrontHandler) Home(c *fiber.Ctx) error {
	products, err := h.Catalog.ListProducts()
	if err != nil {
		applog.Error(c, "home.products", err, nil)
		return err
	}
	stores, err := h.Catalog.ListStores()
	if err != nil {
		applog.Error(c, "home.stores", err, nil)
		return err
	}
	payments := make([]paymentOption, 0, 3)
	for _, m := range domain.PaymentMethods() {
		payments = append(payments, paymentOption{Value: m.String(), Label: m.Label()})
	}
	sess := h.Sessions.View(ensureSID(c))
	return render(c, "home", fiber.Map{
		"Products": products,
		"Stores":   stores,
		"Payments": payments,
		"Session":  viewOf(sess),
	})
}

func NotFound(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(fiber.StatusNotFound).JSON(errorBody(codeNotFound, "not found", nil, nil))
	}
	return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Página não encontrada."})
}
