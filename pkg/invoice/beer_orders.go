// pkg/invoice/beer_orders.go

package invoice

import (
	"strings"

	"github.com/shopspring/decimal"
)

// BeerOrders is the non-empty, ordered set of lines billed on one invoice.
type BeerOrders struct {
	orders []BeerOrder
}

// NewBeerOrders copies orders, so later changes to the caller's slice are not
// seen by the returned value.
func NewBeerOrders(orders []BeerOrder) (BeerOrders, error) {
	if len(orders) == 0 {
		return BeerOrders{}, invalidArgument("order list cannot be empty")
	}

	copied := make([]BeerOrder, len(orders))
	copy(copied, orders)

	return BeerOrders{orders: copied}, nil
}

// Len returns the number of lines.
func (o BeerOrders) Len() int {
	return len(o.orders)
}

// Orders returns a copy of the lines in input order.
func (o BeerOrders) Orders() []BeerOrder {
	copied := make([]BeerOrder, len(o.orders))
	copy(copied, o.orders)
	return copied
}

// TotalCost sums the already rounded line totals.
func (o BeerOrders) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, order := range o.orders {
		total = total.Add(order.Total())
	}
	return total
}

// IsOverBudget reports whether the total is strictly greater than budget.
func (o BeerOrders) IsOverBudget(budget decimal.Decimal) bool {
	return o.TotalCost().GreaterThan(budget)
}

// String renders one line per order, joined by "\n".
func (o BeerOrders) String() string {
	lines := make([]string, 0, len(o.orders))
	for _, order := range o.orders {
		lines = append(lines, order.String())
	}
	return strings.Join(lines, "\n")
}
