package handlers

import (
	"ultrapopular/internal/catalog"
	"ultrapopular/internal/link"
	"ultrapopular/internal/metrics"
	"ultrapopular/internal/services"
	"ultrapopular/internal/session"
)

type Deps struct {
	StorefrontHandler *StorefrontHandler
	CatalogHandler    *CatalogHandler
	CartHandler       *CartHandler
	CheckoutHandler   *CheckoutHandler
	OrderHandler      *OrderHandler
}

func NewDeps(products catalog.Products, stores catalog.Directory, sessions *session.Store, links link.Builder, m *metrics.OrderMetrics) *Deps {
	catalogSvc := services.NewCatalogService(products, stores)
	cartSvc := services.NewCartService(catalogSvc, m)
	orderSvc := services.NewOrderService(stores, links, m)

	return &Deps{
		StorefrontHandler: &StorefrontHandler{Catalog: catalogSvc, Sessions: sessions},
		CatalogHandler:    &CatalogHandler{Catalog: catalogSvc},
		CartHandler:       &CartHandler{Cart: cartSvc, Sessions: sessions},
		CheckoutHandler:   &CheckoutHandler{Sessions: sessions},
		OrderHandler:      &OrderHandler{Order: orderSvc, Sessions: sessions},
	}
}
