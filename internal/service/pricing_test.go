package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateQuote(t *testing.T) {
	lines := []PriceLine{
		{UnitPrice: decimal.NewFromInt(500000), Quantity: 2},
		{UnitPrice: decimal.NewFromInt(300000), Quantity: 1},
	}
	quote := NewPricingCalculator(decimal.NewFromInt(30000)).Quote(lines)

	assert.True(t, quote.Subtotal.Equal(decimal.NewFromInt(1300000)), "subtotal %s", quote.Subtotal)
	assert.True(t, quote.ShippingFee.Equal(decimal.NewFromInt(30000)))
	assert.True(t, quote.Discount.IsZero())
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(1330000)), "total %s", quote.Total)
}

func TestCalculateEmptyLines(t *testing.T) {
	quote := Calculate(nil, decimal.NewFromInt(30000), decimal.Zero)
	assert.True(t, quote.Subtotal.IsZero())
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(30000)))
}

func TestCalculateWithDiscountAndDecimals(t *testing.T) {
	lines := []PriceLine{{UnitPrice: decimal.RequireFromString("19.99"), Quantity: 3}}
	quote := Calculate(lines, decimal.RequireFromString("5.01"), decimal.RequireFromString("10"))
	assert.Equal(t, "59.97", quote.Subtotal.StringFixed(2))
	assert.Equal(t, "54.98", quote.Total.StringFixed(2))
}

func TestLineTotal(t *testing.T) {
	assert.True(t, LineTotal(decimal.NewFromInt(500000), 2).Equal(decimal.NewFromInt(1000000)))
	assert.True(t, LineTotal(decimal.NewFromInt(500000), 0).IsZero())
}
