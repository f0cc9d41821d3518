package domain

import "github.com/shopspring/decimal"

type Product struct {
	ID            string              `db:"id" json:"id"`
	Name          string              `db:"name" json:"name"`
	Price         decimal.Decimal     `db:"price" json:"price"`
	OriginalPrice decimal.NullDecimal `db:"original_price" json:"originalPrice"` // strikethrough price, >= Price
	Size          string              `db:"size" json:"size,omitempty"`
	Image         string              `db:"image" json:"image"`
}

// OnSale reports whether the product carries a higher original price to strike through.
func (p Product) OnSale() bool {
	return p.OriginalPrice.Valid && p.OriginalPrice.Decimal.GreaterThan(p.Price)
}

type Store struct {
	ID             string `db:"id" json:"id"`
	Name           string `db:"name" json:"name"`
	City           string `db:"city" json:"city"`
	ContactLabel   string `db:"contact_label" json:"contactLabel"`     // (21) 96845-0574
	ContactAddress string `db:"contact_address" json:"contactAddress"` // digits only, used in the deep link
}
