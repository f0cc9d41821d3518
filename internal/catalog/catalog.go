package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"ultrapopular/internal/domain"
)

// ErrNotFound is returned by lookups for unknown ids.
var ErrNotFound = errors.New("not found")

// Products is the read side of the product catalog.
type Products interface {
	ListProducts() ([]domain.Product, error)
	FindProduct(id string) (domain.Product, error)
}

// Directory is the read side of the store directory.
type Directory interface {
	ListStores() ([]domain.Store, error)
	FindStore(id string) (domain.Store, error)
	StoresByCity(city string) ([]domain.Store, error)
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func was(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

// SeedProducts is the fixed catalog shown on the storefront.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:    "pampers-1",
			Name:  "Fraldas Pampers Confort Sec P.",
			Price: price("54.99"),
			Size:  "P",
			Image: "https://via.placeholder.com/200x200?text=Pampers",
		},
		{
			ID:    "huggies-1",
			Name:  "Lenços Umedecidos Huggies Max Clean 48 un",
			Price: price("9.90"),
			Image: "https://via.placeholder.com/200x200?text=Huggies",
		},
		{
			ID:            "leite-ninho-1",
			Name:          "Leite Ninho Fases 1+ Lata 800g",
			Price:         price("38.90"),
			OriginalPrice: was("45.50"),
			Image:         "https://via.placeholder.com/200x200?text=Ninho",
		},
		{
			ID:    "dorflex-1",
			Name:  "Dorflex Caixa 10 comprimidos",
			Price: price("5.50"),
			Image: "https://via.placeholder.com/200x200?text=Dorflex",
		},
	}
}

// SeedStores is the fixed store directory. New stores only need a new entry here.
func SeedStores() []domain.Store {
	return []domain.Store{
		{ID: "ultra-vasco", Name: "Ultra Vasco", City: "Belford Roxo", ContactLabel: "(21) 96845-0574", ContactAddress: "5521968450574"},
		{ID: "ultra-lote-xv", Name: "Ultra Lote XV", City: "Belford Roxo", ContactLabel: "(21) 96845-0574", ContactAddress: "5521968450574"},
		{ID: "ultra-jardim-primavera", Name: "Ultra Jardim Primavera", City: "Duque de Caxias", ContactLabel: "(21) 99320-2884", ContactAddress: "5521993202884"},
		{ID: "ultra-jardim-gramacho", Name: "Ultra Jardim Gramacho", City: "Duque de Caxias", ContactLabel: "(21) 97648-8682", ContactAddress: "5521976488682"},
	}
}

// Check reports every integrity problem in the given catalog and directory.
func Check(products []domain.Product, stores []domain.Store) error {
	var errs error
	seen := map[string]bool{}
	for _, p := range products {
		switch {
		case strings.TrimSpace(p.ID) == "":
			errs = multierr.Append(errs, fmt.Errorf("product %q: empty id", p.Name))
			continue
		case seen[p.ID]:
			errs = multierr.Append(errs, fmt.Errorf("product %s: duplicate id", p.ID))
		}
		seen[p.ID] = true
		if p.Price.IsNegative() {
			errs = multierr.Append(errs, fmt.Errorf("product %s: negative price %s", p.ID, p.Price))
		}
		if p.OriginalPrice.Valid && p.OriginalPrice.Decimal.LessThan(p.Price) {
			errs = multierr.Append(errs, fmt.Errorf("product %s: original price %s below price %s", p.ID, p.OriginalPrice.Decimal, p.Price))
		}
	}
	seen = map[string]bool{}
	for _, s := range stores {
		if strings.TrimSpace(s.ID) == "" {
			errs = multierr.Append(errs, fmt.Errorf("store %q: empty id", s.Name))
			continue
		}
		if seen[s.ID] {
			errs = multierr.Append(errs, fmt.Errorf("store %s: duplicate id", s.ID))
		}
		seen[s.ID] = true
		if strings.TrimSpace(s.ContactAddress) == "" {
			errs = multierr.Append(errs, fmt.Errorf("store %s: empty contact address", s.ID))
		}
	}
	return errs
}
