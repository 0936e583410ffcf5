package model

import (
	"encoding/json"
	"testing"

	"github.com/pub-invoicing/pkg/invoice"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeerOrderLines_ToBeerOrders(t *testing.T) {
	lines := BeerOrderLines{
		{Beer: "Guinness", Quantity: 10, UnitPrice: decimal.NewFromFloat(5.0)},
		{Beer: "Kilkenny", Quantity: 5, UnitPrice: decimal.NewFromFloat(4.5)},
	}

	orders, err := lines.ToBeerOrders()
	require.NoError(t, err)

	assert.Equal(t, 2, orders.Len())
	assert.Equal(t, "72.5", orders.TotalCost().StringFixed(1))
}

func TestBeerOrderLines_ToBeerOrders_Invalid(t *testing.T) {
	cases := map[string]BeerOrderLines{
		"Empty":        {},
		"MissingBeer":  {{Quantity: 1, UnitPrice: decimal.NewFromInt(1)}},
		"ZeroQuantity": {{Beer: "Guinness", UnitPrice: decimal.NewFromInt(1)}},
		"ZeroPrice":    {{Beer: "Guinness", Quantity: 1}},
	}

	for name, lines := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := lines.ToBeerOrders()
			assert.ErrorIs(t, err, invoice.ErrInvalidArgument)
		})
	}
}

func TestInvoiceRequest_DecodeJSON(t *testing.T) {
	body := `{"pub":"O'Malley's Pub","orders":[{"beer":"Guinness","quantity":10,"unit_price":5.0}]}`

	var req InvoiceRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, "O'Malley's Pub", req.Pub)
	require.Len(t, req.Orders, 1)
	assert.Equal(t, "Guinness", req.Orders[0].Beer)
	assert.True(t, decimal.NewFromInt(5).Equal(req.Orders[0].UnitPrice))
}
