package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvoice(t *testing.T) {
	orders := mustBeerOrders(t, mustBeerOrder(t, "Guinness", 10, 5.0))

	cases := map[string]struct {
		pub    string
		orders BeerOrders
		errMsg string
	}{
		"Valid":      {"O'Malley's Pub", orders, ""},
		"EmptyPub":   {"", orders, "invalid argument: pub name cannot be empty"},
		"ZeroOrders": {"O'Malley's Pub", BeerOrders{}, "invalid argument: order list cannot be empty"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			inv, err := NewInvoice(tc.pub, tc.orders)
			if tc.errMsg != "" {
				require.ErrorIs(t, err, ErrInvalidArgument)
				assert.EqualError(t, err, tc.errMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.pub, inv.Pub())
			assert.Equal(t, 1, inv.Orders().Len())
		})
	}
}

func TestInvoice_String(t *testing.T) {
	inv, err := NewInvoice("O'Malley's Pub", mustBeerOrders(t,
		mustBeerOrder(t, "Guinness", 10, 5.0),
		mustBeerOrder(t, "Kilkenny", 5, 4.5),
	))
	require.NoError(t, err)

	expected := "Invoice for O'Malley's Pub:\n" +
		"Guinness - 10 x 5.0€ = 50.0€\n" +
		"Kilkenny - 5 x 4.5€ = 22.5€\n" +
		"Total: 72.5€"

	assert.Equal(t, expected, inv.String())
	assert.Equal(t, "Invoice for O'Malley's Pub:", inv.Title())
	assert.Equal(t, "Total: 72.5€", inv.TotalLine())
}
