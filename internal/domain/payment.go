package domain

// PaymentMethod describes how the customer intends to pay on delivery.
// Values are kept as the storefront submits them so unknown ones can pass through.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "money"
	PaymentCard PaymentMethod = "card"
	PaymentPix  PaymentMethod = "pix"
)

var paymentLabels = map[PaymentMethod]string{
	PaymentCash: "Dinheiro",
	PaymentCard: "Cartão",
	PaymentPix:  "Pix",
}

// PaymentMethods lists the known methods in display order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentCash, PaymentCard, PaymentPix}
}

// String implements fmt.Stringer.
func (p PaymentMethod) String() string {
	return string(p)
}

// IsKnown reports whether the value is one of the enumerated methods.
func (p PaymentMethod) IsKnown() bool {
	_, ok := paymentLabels[p]
	return ok
}

// Label returns the display label, falling back to the raw value.
func (p PaymentMethod) Label() string {
	if label, ok := paymentLabels[p]; ok {
		return label
	}
	return string(p)
}
