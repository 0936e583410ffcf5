// pkg/invoice/service.go

package invoice

import "github.com/shopspring/decimal"

// OrderService is the entry point used by the API and the command line.
type OrderService struct{}

// NewOrderService creates an OrderService.
func NewOrderService() *OrderService {
	return &OrderService{}
}

// GenerateInvoice renders the invoice text for pub.
func (s *OrderService) GenerateInvoice(pub string, orders BeerOrders) (string, error) {
	inv, err := NewInvoice(pub, orders)
	if err != nil {
		return "", err
	}
	return inv.String(), nil
}

// IsOverBudget reports whether the orders cost strictly more than budget.
func (s *OrderService) IsOverBudget(orders BeerOrders, budget decimal.Decimal) bool {
	return orders.IsOverBudget(budget)
}

// GenerateInvoiceFromColumns zips parallel columns into lines and renders the
// invoice. All three columns must have the same, non-zero length.
func (s *OrderService) GenerateInvoiceFromColumns(
	pub string,
	beers []string,
	quantities []int,
	unitPrices []decimal.Decimal,
) (string, error) {
	if len(beers) != len(quantities) {
		return "", invalidArgument("column lengths differ")
	}

	orders, err := zipColumns(beers, quantities, unitPrices)
	if err != nil {
		return "", err
	}
	return s.GenerateInvoice(pub, orders)
}

// IsOverBudgetFromColumns applies IsOverBudget to unnamed lines.
func (s *OrderService) IsOverBudgetFromColumns(
	quantities []int,
	unitPrices []decimal.Decimal,
	budget decimal.Decimal,
) (bool, error) {
	beers := make([]string, len(quantities))
	for i := range beers {
		beers[i] = "-"
	}

	orders, err := zipColumns(beers, quantities, unitPrices)
	if err != nil {
		return false, err
	}
	return s.IsOverBudget(orders, budget), nil
}

func zipColumns(beers []string, quantities []int, unitPrices []decimal.Decimal) (BeerOrders, error) {
	if len(quantities) != len(unitPrices) {
		return BeerOrders{}, invalidArgument("column lengths differ")
	}

	lines := make([]BeerOrder, 0, len(beers))
	for i := range beers {
		line, err := NewBeerOrder(beers[i], quantities[i], unitPrices[i])
		if err != nil {
			return BeerOrders{}, err
		}
		lines = append(lines, line)
	}
	return NewBeerOrders(lines)
}
