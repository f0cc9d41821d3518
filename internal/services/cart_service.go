package services

import (
	"ultrapopular/internal/domain"
	applog "ultrapopular/internal/log"
	"ultrapopular/internal/metrics"
	"ultrapopular/internal/notify"
)

const (
	msgItemAdded   = "Produto adicionado ao carrinho!"
	msgItemRemoved = "Produto removido do carrinho!"
)

// CartService applies the cart operations to a session and raises the
// shopper-facing confirmations.
type CartService struct {
	Catalog *CatalogService
	Metrics *metrics.OrderMetrics
}

func NewCartService(catalog *CatalogService, m *metrics.OrderMetrics) *CartService {
	return &CartService{Catalog: catalog, Metrics: m}
}

// Add puts one more unit of p in the cart. It always succeeds.
func (s *CartService) Add(sess *domain.Session, p domain.Product, n notify.Notifier) {
	sess.Cart.Add(p)
	s.Metrics.IncCartOp("add")
	applog.Info(nil, "cart.add", map[string]any{"product": p.ID, "qty": sess.Cart.Quantity(p.ID)})
	n.Notify(notify.Success, msgItemAdded)
}

// AddByID resolves productID in the catalog before adding it.
func (s *CartService) AddByID(sess *domain.Session, productID string, n notify.Notifier) (domain.Product, error) {
	p, err := s.Catalog.GetProduct(productID)
	if err != nil {
		return domain.Product{}, err
	}
	s.Add(sess, p, n)
	return p, nil
}

// Remove drops the product's line; removing an absent line is not an error.
func (s *CartService) Remove(sess *domain.Session, productID string, n notify.Notifier) {
	removed := sess.Cart.Remove(productID)
	s.Metrics.IncCartOp("remove")
	applog.Info(nil, "cart.remove", map[string]any{"product": productID, "removed": removed})
	n.Notify(notify.Success, msgItemRemoved)
}

// SetQuantity replaces a line's quantity. qty <= 0 is exactly Remove; a
// product without a line is left alone.
func (s *CartService) SetQuantity(sess *domain.Session, productID string, qty int, n notify.Notifier) {
	if qty <= 0 {
		s.Remove(sess, productID, n)
		return
	}
	changed := sess.Cart.SetQuantity(productID, qty)
	s.Metrics.IncCartOp("quantity")
	applog.Info(nil, "cart.quantity", map[string]any{"product": productID, "qty": qty, "changed": changed})
}
