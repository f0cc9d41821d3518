package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ultrapopular/internal/domain"
	"ultrapopular/internal/notify"
)

const sessionCookie = "sid"

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies(sessionCookie)
	if _, err := uuid.Parse(sid); err != nil {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     sessionCookie,
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return sid
}

// newFeed collects the notices raised while handling this request and
// mirrors them into the event log.
func newFeed() (*notify.Feed, notify.Notifier) {
	feed := &notify.Feed{}
	return feed, notify.Tee(feed, notify.Log{})
}

type lineView struct {
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
	Subtotal string         `json:"subtotal"`
}

type sessionView struct {
	Lines     []lineView          `json:"lines"`
	ItemCount int                 `json:"itemCount"`
	Total     string              `json:"total"`
	StoreID   string              `json:"storeId"`
	Customer  domain.CustomerInfo `json:"customer"`
	Addendum  string              `json:"addendum"`
}

func viewOf(s domain.Session) sessionView {
	v := sessionView{
		Lines:    make([]lineView, 0, len(s.Cart.Lines)),
		Total:    s.Cart.Total().StringFixed(2),
		StoreID:  s.StoreID,
		Customer: s.Customer,
		Addendum: s.Addendum,
	}
	for _, l := range s.Cart.Lines {
		v.Lines = append(v.Lines, lineView{Product: l.Product, Quantity: l.Quantity, Subtotal: l.Subtotal().StringFixed(2)})
		v.ItemCount += l.Quantity
	}
	return v
}

func sessionResponse(c *fiber.Ctx, s domain.Session, feed *notify.Feed) error {
	return c.JSON(fiber.Map{"session": viewOf(s), "notices": feed.Notices()})
}
