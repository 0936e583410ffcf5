// pkg/invoice/beer_order.go

package invoice

import (
	"fmt"

	"github.com/pub-invoicing/pkg/money"
	"github.com/shopspring/decimal"
)

// BeerOrder is one invoice line: a beer, how many were ordered and the price
// of a single unit.
type BeerOrder struct {
	beer      string
	quantity  int
	unitPrice decimal.Decimal
}

// NewBeerOrder validates the line and normalises the unit price to one
// fractional digit.
func NewBeerOrder(beer string, quantity int, unitPrice decimal.Decimal) (BeerOrder, error) {
	if beer == "" {
		return BeerOrder{}, invalidArgument("beer name cannot be empty")
	}
	if quantity <= 0 {
		return BeerOrder{}, invalidArgument("quantity must be greater than zero")
	}
	if !unitPrice.IsPositive() {
		return BeerOrder{}, invalidArgument("unit price must be greater than zero")
	}

	return BeerOrder{
		beer:      beer,
		quantity:  quantity,
		unitPrice: money.Round1(unitPrice),
	}, nil
}

// Beer returns the beer name.
func (o BeerOrder) Beer() string {
	return o.beer
}

// Quantity returns the number of units ordered.
func (o BeerOrder) Quantity() int {
	return o.quantity
}

// UnitPrice returns the normalised unit price.
func (o BeerOrder) UnitPrice() decimal.Decimal {
	return o.unitPrice
}

// Total is the unit price times the quantity, rounded to one digit.
func (o BeerOrder) Total() decimal.Decimal {
	return money.Round1(o.unitPrice.Mul(decimal.NewFromInt(int64(o.quantity))))
}

// String renders the line as "<beer> - <qty> x <price>€ = <total>€".
func (o BeerOrder) String() string {
	return fmt.Sprintf("%s - %d x %s = %s",
		o.beer, o.quantity, money.FormatWithCurrency(o.unitPrice), money.FormatWithCurrency(o.Total()))
}
