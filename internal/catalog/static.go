package catalog

import (
	"strings"

	"ultrapopular/internal/domain"
)

// Static serves products and stores from in-memory slices.
type Static struct {
	products []domain.Product
	stores   []domain.Store
}

// NewStatic checks the data and copies it so callers cannot mutate it later.
func NewStatic(products []domain.Product, stores []domain.Store) (*Static, error) {
	if err := Check(products, stores); err != nil {
		return nil, err
	}
	return &Static{
		products: append([]domain.Product(nil), products...),
		stores:   append([]domain.Store(nil), stores...),
	}, nil
}

// NewSeeded returns the storefront's built-in catalog.
func NewSeeded() *Static {
	s, err := NewStatic(SeedProducts(), SeedStores())
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Static) ListProducts() ([]domain.Product, error) {
	return append([]domain.Product(nil), s.products...), nil
}

func (s *Static) FindProduct(id string) (domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrNotFound
}

func (s *Static) ListStores() ([]domain.Store, error) {
	return append([]domain.Store(nil), s.stores...), nil
}

func (s *Static) FindStore(id string) (domain.Store, error) {
	for _, st := range s.stores {
		if st.ID == id {
			return st, nil
		}
	}
	return domain.Store{}, ErrNotFound
}

// StoresByCity matches the city case-insensitively, ignoring surrounding spaces.
func (s *Static) StoresByCity(city string) ([]domain.Store, error) {
	city = strings.TrimSpace(city)
	out := []domain.Store{}
	for _, st := range s.stores {
		if strings.EqualFold(st.City, city) {
			out = append(out, st)
		}
	}
	return out, nil
}
