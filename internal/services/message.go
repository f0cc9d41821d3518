package services

import (
	"fmt"
	"strings"

	"ultrapopular/internal/domain"
)

const addendumDisclaimer = "Obs: A disponibilidade e o preço destes itens serão confirmados via WhatsApp."

// messageSection renders one named block of the order message.
type messageSection struct {
	name   string
	render func(b *strings.Builder, o domain.Order)
}

// messageLayout fixes the section order the store staff read the order in.
var messageLayout = []messageSection{
	{"title", func(b *strings.Builder, _ domain.Order) {
		b.WriteString("*PEDIDO ULTRA POPULAR*\n\n")
	}},
	{"store", func(b *strings.Builder, o domain.Order) {
		fmt.Fprintf(b, "📍 *Loja Selecionada:* %s - %s\n\n", o.Store.Name, o.Store.City)
	}},
	{"products", func(b *strings.Builder, o domain.Order) {
		b.WriteString("*PRODUTOS:*\n")
		for _, l := range o.Lines {
			b.WriteString(productLine(l))
			b.WriteByte('\n')
		}
	}},
	{"total", func(b *strings.Builder, o domain.Order) {
		fmt.Fprintf(b, "\n*TOTAL: R$ %s*\n\n", o.Total.StringFixed(2))
	}},
	{"delivery", func(b *strings.Builder, o domain.Order) {
		c := o.Customer
		b.WriteString("*DADOS DE ENTREGA:*\n")
		fmt.Fprintf(b, "Nome: %s\n", c.Name)
		fmt.Fprintf(b, "Telefone: %s\n", c.Phone)
		fmt.Fprintf(b, "Endereço: %s\n", c.Address)
		fmt.Fprintf(b, "Bairro: %s\n", c.Neighborhood)
		fmt.Fprintf(b, "Cidade: %s\n", c.City)
	}},
	{"addendum", func(b *strings.Builder, o domain.Order) {
		if strings.TrimSpace(o.Addendum) == "" {
			return
		}
		fmt.Fprintf(b, "\n*PRODUTOS ADICIONAIS:*\n%s\n", o.Addendum)
		fmt.Fprintf(b, "\n%s\n", addendumDisclaimer)
	}},
	{"payment", func(b *strings.Builder, o domain.Order) {
		fmt.Fprintf(b, "Forma de Pagamento: %s\n", o.Customer.PaymentMethod.Label())
	}},
}

// productLine renders "• name (size) - R$ price x qty = R$ subtotal".
func productLine(l domain.CartLine) string {
	name := l.Product.Name
	if l.Product.Size != "" {
		name += " (" + l.Product.Size + ")"
	}
	return fmt.Sprintf("• %s - R$ %s x %d = R$ %s",
		name, l.Product.Price.StringFixed(2), l.Quantity, l.Subtotal().StringFixed(2))
}

// FormatMessage renders the order as plain, unescaped text.
func FormatMessage(o domain.Order) string {
	var b strings.Builder
	for _, s := range messageLayout {
		s.render(&b, o)
	}
	return b.String()
}

// MessageSections lists section names in render order.
func MessageSections() []string {
	out := make([]string, len(messageLayout))
	for i, s := range messageLayout {
		out[i] = s.name
	}
	return out
}
