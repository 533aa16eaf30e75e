package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "₹1,234.56", FormatINR(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "₹0.00", FormatINR(decimal.Zero))
}

func TestRoundTrip(t *testing.T) {
	original := decimal.RequireFromString("99.95")
	m := NewFromDecimal(original)

	assert.Equal(t, int64(9995), m.Amount())
	assert.True(t, m.ToDecimal().Equal(original))
	assert.False(t, m.IsNegative())
}

func TestNegative(t *testing.T) {
	m := NewFromDecimal(decimal.RequireFromString("-10.50"))
	assert.True(t, m.IsNegative())
}

func TestNilSafety(t *testing.T) {
	var m *Money
	assert.Equal(t, int64(0), m.Amount())
	assert.False(t, m.IsNegative())
	assert.True(t, m.ToDecimal().IsZero())
}
