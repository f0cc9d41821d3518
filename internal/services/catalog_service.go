package services

import (
	"errors"

	"ultrapopular/internal/catalog"
	"ultrapopular/internal/domain"
)

type CatalogService struct {
	Products catalog.Products
	Stores   catalog.Directory
}

func NewCatalogService(products catalog.Products, stores catalog.Directory) *CatalogService {
	return &CatalogService{Products: products, Stores: stores}
}

func (s *CatalogService) ListProducts() ([]domain.Product, error) {
	return s.Products.ListProducts()
}

// GetProduct maps an unknown id to KindProductNotFound.
func (s *CatalogService) GetProduct(id string) (domain.Product, error) {
	p, err := s.Products.FindProduct(id)
	if errors.Is(err, catalog.ErrNotFound) {
		return domain.Product{}, wrapError(KindProductNotFound, err)
	}
	return p, err
}

func (s *CatalogService) ListStores() ([]domain.Store, error) {
	return s.Stores.ListStores()
}

// SuggestStores lists the stores in the customer's city, or all stores for an empty city.
func (s *CatalogService) SuggestStores(city string) ([]domain.Store, error) {
	if city == "" {
		return s.Stores.ListStores()
	}
	return s.Stores.StoresByCity(city)
}
