package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ultrapopular/internal/domain"
	"ultrapopular/internal/services"
	"ultrapopular/internal/session"
	"ultrapopular/internal/validate"
)

type CartHandler struct {
	Cart     *services.CartService
	Sessions *session.Store
}

type addItemBody struct {
	ProductID string `json:"productId" validate:"required,max=64"`
}

type quantityBody struct {
	Quantity *int `json:"quantity" validate:"required,max=999"`
}

// View returns the shopper's session snapshot.
func (h *CartHandler) View(c *fiber.Ctx) error {
	feed, _ := newFeed()
	return sessionResponse(c, h.Sessions.View(ensureSID(c)), feed)
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	feed, n := newFeed()

	var body addItemBody
	if err := validate.DecodeJSON(c.Body(), &body); err != nil {
		return respondError(c, err, feed)
	}
	id, ok := validate.ID(body.ProductID)
	if !ok {
		return badRequest(c, "productId", body.ProductID)
	}

	sess, err := h.Sessions.Update(sid, func(s *domain.Session) error {
		_, err := h.Cart.AddByID(s, id, n)
		return err
	})
	if err != nil {
		return respondError(c, err, feed)
	}
	return sessionResponse(c, sess, feed)
}

// SetQuantity replaces a line's quantity; zero or less removes the line.
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	sid := ensureSID(c)
	feed, n := newFeed()

	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "id", c.Params("id"))
	}
	var body quantityBody
	if err := validate.DecodeJSON(c.Body(), &body); err != nil {
		return respondError(c, err, feed)
	}

	sess, _ := h.Sessions.Update(sid, func(s *domain.Session) error {
		h.Cart.SetQuantity(s, id, *body.Quantity, n)
		return nil
	})
	return sessionResponse(c, sess, feed)
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	feed, n := newFeed()

	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "id", c.Params("id"))
	}
	sess, _ := h.Sessions.Update(sid, func(s *domain.Session) error {
		h.Cart.Remove(s, id, n)
		return nil
	})
	return sessionResponse(c, sess, feed)
}
