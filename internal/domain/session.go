package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type CustomerInfo struct {
	Name          string        `json:"name"`
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	Neighborhood  string        `json:"neighborhood"`
	City          string        `json:"city"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

// Complete reports whether every delivery field holds non-blank text.
func (ci CustomerInfo) Complete() bool {
	for _, v := range []string{ci.Name, ci.Phone, ci.Address, ci.Neighborhood, ci.City} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// Session is everything one shopper has entered so far.
type Session struct {
	Cart     Cart         `json:"cart"`
	StoreID  string       `json:"storeId"`
	Customer CustomerInfo `json:"customer"`
	Addendum string       `json:"addendum"` // off-catalog items, free text
}

func NewSession() *Session {
	return &Session{Customer: CustomerInfo{PaymentMethod: PaymentCash}}
}

// Clone returns a deep copy safe to read outside the session lock.
func (s *Session) Clone() Session {
	out := *s
	out.Cart = s.Cart.Clone()
	return out
}

// Order is the read-only projection built at submit time.
type Order struct {
	Store    Store
	Lines    []CartLine
	Customer CustomerInfo
	Addendum string
	Total    decimal.Decimal
}

// NewOrder projects a session onto the resolved store.
func NewOrder(store Store, s Session) Order {
	cart := s.Cart.Clone()
	return Order{
		Store:    store,
		Lines:    cart.Lines,
		Customer: s.Customer,
		Addendum: s.Addendum,
		Total:    cart.Total(),
	}
}
