// pkg/invoice/invoice.go

package invoice

import (
	"fmt"

	"github.com/pub-invoicing/pkg/money"
)

// Invoice binds a pub to the beer orders billed to it.
type Invoice struct {
	pub    string
	orders BeerOrders
}

// NewInvoice rejects an empty pub name and a zero BeerOrders.
func NewInvoice(pub string, orders BeerOrders) (Invoice, error) {
	if pub == "" {
		return Invoice{}, invalidArgument("pub name cannot be empty")
	}
	if orders.Len() == 0 {
		return Invoice{}, invalidArgument("order list cannot be empty")
	}

	return Invoice{pub: pub, orders: orders}, nil
}

// Pub returns the customer name.
func (i Invoice) Pub() string {
	return i.pub
}

// Orders returns the billed lines.
func (i Invoice) Orders() BeerOrders {
	return i.orders
}

// Title is the first line of the invoice.
func (i Invoice) Title() string {
	return fmt.Sprintf("Invoice for %s:", i.pub)
}

// TotalLine is the last line of the invoice.
func (i Invoice) TotalLine() string {
	return "Total: " + money.FormatWithCurrency(i.orders.TotalCost())
}

// String renders the full invoice text, without a trailing newline.
func (i Invoice) String() string {
	return i.Title() + "\n" + i.orders.String() + "\n" + i.TotalLine()
}
