package invoice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBeerOrder(t *testing.T) {
	cases := map[string]struct {
		beer      string
		quantity  int
		unitPrice decimal.Decimal
		errMsg    string
	}{
		"Valid":         {"Guinness", 10, decimal.NewFromFloat(5.0), ""},
		"EmptyBeer":     {"", 10, decimal.NewFromFloat(5.0), "invalid argument: beer name cannot be empty"},
		"ZeroQuantity":  {"Guinness", 0, decimal.NewFromFloat(5.0), "invalid argument: quantity must be greater than zero"},
		"NegativeQty":   {"Guinness", -1, decimal.NewFromFloat(5.0), "invalid argument: quantity must be greater than zero"},
		"ZeroPrice":     {"Guinness", 1, decimal.Zero, "invalid argument: unit price must be greater than zero"},
		"NegativePrice": {"Guinness", 1, decimal.NewFromFloat(-2.5), "invalid argument: unit price must be greater than zero"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			order, err := NewBeerOrder(tc.beer, tc.quantity, tc.unitPrice)
			if tc.errMsg != "" {
				require.ErrorIs(t, err, ErrInvalidArgument)
				assert.EqualError(t, err, tc.errMsg)
				assert.Equal(t, BeerOrder{}, order)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.beer, order.Beer())
			assert.Equal(t, tc.quantity, order.Quantity())
		})
	}
}

func TestBeerOrder_NormalisesUnitPrice(t *testing.T) {
	order, err := NewBeerOrder("Kilkenny", 2, decimal.RequireFromString("4.45"))
	require.NoError(t, err)

	assert.Equal(t, "4.5", order.UnitPrice().StringFixed(1))
	assert.Equal(t, "9.0", order.Total().StringFixed(1))
	assert.Equal(t, "Kilkenny - 2 x 4.5€ = 9.0€", order.String())
}

func TestBeerOrder_Total(t *testing.T) {
	cases := map[string]struct {
		quantity  int
		unitPrice string
		expected  string
	}{
		"Guinness":   {10, "5.0", "50.0"},
		"Kilkenny":   {5, "4.5", "22.5"},
		"Normalised": {10, "4.45", "45.0"},
		"SmallUnit":  {3, "0.05", "0.3"},
		"Large":      {20, "6.0", "120.0"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			order, err := NewBeerOrder(name, tc.quantity, decimal.RequireFromString(tc.unitPrice))
			require.NoError(t, err)

			assert.Equal(t, tc.expected, order.Total().StringFixed(1))
			assert.True(t, order.Total().Equal(order.Total().Round(1)))
		})
	}
}

func TestBeerOrder_String(t *testing.T) {
	order, err := NewBeerOrder("Guinness", 10, decimal.NewFromFloat(5.0))
	require.NoError(t, err)

	assert.Equal(t, "Guinness - 10 x 5.0€ = 50.0€", order.String())
}
