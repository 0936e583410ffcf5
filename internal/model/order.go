// internal/model/order.go

package model

import (
	"github.com/pub-invoicing/pkg/invoice"
	"github.com/shopspring/decimal"
)

// BeerOrderLine is one line as it arrives over the wire or from an order file.
type BeerOrderLine struct {
	Beer      string          `json:"beer" example:"Guinness"`
	Quantity  int             `json:"quantity" example:"10"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"number" example:"5.0"`
}

// BeerOrderLines is the ordered list of lines of one request.
type BeerOrderLines []BeerOrderLine

// InvoiceRequest is the body of POST /invoices.
type InvoiceRequest struct {
	Pub    string         `json:"pub" example:"O'Malley's Pub"`
	Orders BeerOrderLines `json:"orders"`
}

// BudgetRequest is the body of POST /budget-checks. Budget is required.
type BudgetRequest struct {
	Orders BeerOrderLines   `json:"orders"`
	Budget *decimal.Decimal `json:"budget" swaggertype:"number" example:"100"`
}

// BudgetResponse reports a budget check. Total is printed with one digit,
// Budget exactly as received.
type BudgetResponse struct {
	Total      string `json:"total" example:"72.5"`
	Budget     string `json:"budget" example:"100"`
	OverBudget bool   `json:"over_budget" example:"false"`
}

// ToBeerOrders validates every line and builds the domain order set.
func (l BeerOrderLines) ToBeerOrders() (invoice.BeerOrders, error) {
	orders := make([]invoice.BeerOrder, 0, len(l))
	for _, line := range l {
		order, err := invoice.NewBeerOrder(line.Beer, line.Quantity, line.UnitPrice)
		if err != nil {
			return invoice.BeerOrders{}, err
		}
		orders = append(orders, order)
	}

	return invoice.NewBeerOrders(orders)
}
