package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ultrapopular/internal/domain"
	applog "ultrapopular/internal/log"
	"ultrapopular/internal/services"
	"ultrapopular/internal/session"
)

type OrderHandler struct {
	Order    *services.OrderService
	Sessions *session.Store
}

// Submit validates the shopper's session and returns the message and the
// link that opens it in the store's chat. The cart is emptied on success;
// the rest of the form stays for the next order.
func (h *OrderHandler) Submit(c *fiber.Ctx) error {
	sid := ensureSID(c)
	feed, n := newFeed()

	var out services.Outbound
	rest, err := h.Sessions.Settle(sid, func(sess domain.Session) (err error) {
		out, err = h.Order.Submit(sess, n)
		return err
	})
	if err != nil {
		if services.KindOf(err) == "" {
			applog.Error(c, "order.submit.fail", err, nil)
		}
		return respondError(c, err, feed)
	}
	applog.Audit(c, "order.submit", map[string]any{"contact": out.ContactAddress})
	return c.JSON(fiber.Map{
		"contact": out.ContactAddress,
		"message": out.Message,
		"link":    out.Link,
		"session": viewOf(rest),
		"notices": feed.Notices(),
	})
}
