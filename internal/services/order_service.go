package services

import (
	"ultrapopular/internal/catalog"
	"ultrapopular/internal/domain"
	"ultrapopular/internal/link"
	applog "ultrapopular/internal/log"
	"ultrapopular/internal/metrics"
	"ultrapopular/internal/notify"
)

// Outbound is what the shopper's client opens to hand the order to the store.
type Outbound struct {
	ContactAddress string `json:"contact"`
	Message        string `json:"message"`
	Link           string `json:"link"`
}

type OrderService struct {
	Stores  catalog.Directory
	Links   link.Builder
	Metrics *metrics.OrderMetrics
}

func NewOrderService(stores catalog.Directory, links link.Builder, m *metrics.OrderMetrics) *OrderService {
	return &OrderService{Stores: stores, Links: links, Metrics: m}
}

// Compose renders an already validated order.
func (s *OrderService) Compose(o domain.Order) Outbound {
	msg := FormatMessage(o)
	return Outbound{
		ContactAddress: o.Store.ContactAddress,
		Message:        msg,
		Link:           s.Links.Build(o.Store.ContactAddress, msg),
	}
}

// Submit validates the session and composes the outbound message. A
// rejected submission notifies the shopper and produces nothing. The
// session itself is never modified.
func (s *OrderService) Submit(sess domain.Session, n notify.Notifier) (Outbound, error) {
	store, err := CheckOrder(sess, s.Stores)
	if err != nil {
		kind := KindOf(err)
		if kind == "" {
			s.Metrics.IncSubmission("internal")
			applog.Error(nil, "order.lookup", err, map[string]any{"store": sess.StoreID})
			return Outbound{}, err
		}
		s.Metrics.IncSubmission(string(kind))
		applog.Info(nil, "order.reject", map[string]any{"kind": string(kind), "store": sess.StoreID})
		n.Notify(notify.Failure, MetadataFor(kind).PublicMessage)
		return Outbound{}, err
	}

	o := domain.NewOrder(store, sess)
	out := s.Compose(o)
	s.Metrics.IncSubmission("composed")
	applog.Audit(nil, "order.compose", map[string]any{
		"store":   store.ID,
		"lines":   len(o.Lines),
		"total":   o.Total.StringFixed(2),
		"payment": o.Customer.PaymentMethod.String(),
	})
	return out, nil
}
