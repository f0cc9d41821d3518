package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ultrapopular/internal/domain"
	applog "ultrapopular/internal/log"
	"ultrapopular/internal/session"
	"ultrapopular/internal/validate"
)

// CheckoutHandler records the delivery form as the shopper fills it in.
// Nothing here checks completeness; that happens on submit.
type CheckoutHandler struct {
	Sessions *session.Store
}

type storeBody struct {
	StoreID string `json:"storeId" validate:"max=64"`
}

// Pointer fields leave the current value alone when omitted.
type customerBody struct {
	Name          *string `json:"name" validate:"omitempty,max=120"`
	Phone         *string `json:"phone" validate:"omitempty,max=40"`
	Address       *string `json:"address" validate:"omitempty,max=200"`
	Neighborhood  *string `json:"neighborhood" validate:"omitempty,max=120"`
	City          *string `json:"city" validate:"omitempty,max=120"`
	PaymentMethod *string `json:"paymentMethod" validate:"omitempty,max=32"`
}

type addendumBody struct {
	Text string `json:"text" validate:"max=2000"`
}

// SelectStore keeps the selected id as given. An unknown id is reported
// when the order is submitted.
func (h *CheckoutHandler) SelectStore(c *fiber.Ctx) error {
	feed, _ := newFeed()
	var body storeBody
	if err := validate.DecodeJSON(c.Body(), &body); err != nil {
		return respondError(c, err, feed)
	}
	sess, _ := h.Sessions.Update(ensureSID(c), func(s *domain.Session) error {
		s.StoreID = body.StoreID
		return nil
	})
	applog.Info(c, "checkout.store", map[string]any{"store": body.StoreID})
	return sessionResponse(c, sess, feed)
}

func (h *CheckoutHandler) UpdateCustomer(c *fiber.Ctx) error {
	feed, _ := newFeed()
	var body customerBody
	if err := validate.DecodeJSON(c.Body(), &body); err != nil {
		return respondError(c, err, feed)
	}
	if body.PaymentMethod != nil && !domain.PaymentMethod(*body.PaymentMethod).IsKnown() {
		return badRequest(c, "paymentMethod", *body.PaymentMethod)
	}
	sess, _ := h.Sessions.Update(ensureSID(c), func(s *domain.Session) error {
		apply(&s.Customer.Name, body.Name)
		apply(&s.Customer.Phone, body.Phone)
		apply(&s.Customer.Address, body.Address)
		apply(&s.Customer.Neighborhood, body.Neighborhood)
		apply(&s.Customer.City, body.City)
		if body.PaymentMethod != nil {
			s.Customer.PaymentMethod = domain.PaymentMethod(*body.PaymentMethod)
		}
		return nil
	})
	return sessionResponse(c, sess, feed)
}

func (h *CheckoutHandler) UpdateAddendum(c *fiber.Ctx) error {
	feed, _ := newFeed()
	var body addendumBody
	if err := validate.DecodeJSON(c.Body(), &body); err != nil {
		return respondError(c, err, feed)
	}
	sess, _ := h.Sessions.Update(ensureSID(c), func(s *domain.Session) error {
		s.Addendum = body.Text
		return nil
	})
	return sessionResponse(c, sess, feed)
}

func apply(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
