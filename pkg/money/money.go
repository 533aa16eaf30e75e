// Package money provides currency-safe display formatting for rupee amounts.
// Arithmetic stays in shopspring/decimal; go-money is used at the display
// boundary so grouping and the ₹ grapheme follow ISO-4217 rules.
package money

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// INR is the ISO-4217 code for the Indian Rupee.
const INR = "INR"

// Money represents a rupee amount held in minor units (paise).
type Money struct {
	m *money.Money
}

// NewFromDecimal creates Money from a decimal rupee amount.
func NewFromDecimal(amount decimal.Decimal) *Money {
	currency := money.GetCurrency(INR)
	multiplier := decimal.New(1, int32(currency.Fraction))
	paise := amount.Mul(multiplier).Round(0).IntPart()
	return &Money{m: money.New(paise, INR)}
}

// Zero returns a zero rupee value.
func Zero() *Money {
	return &Money{m: money.New(0, INR)}
}

// Amount returns the amount in paise.
func (m *Money) Amount() int64 {
	if m == nil || m.m == nil {
		return 0
	}
	return m.m.Amount()
}

// IsNegative returns true if the amount is less than zero.
func (m *Money) IsNegative() bool {
	return m != nil && m.m != nil && m.m.IsNegative()
}

// Display returns a formatted string for display (e.g., "₹1,234.56").
func (m *Money) Display() string {
	if m == nil || m.m == nil {
		return Zero().Display()
	}
	return m.m.Display()
}

// ToDecimal converts back to a decimal rupee amount.
func (m *Money) ToDecimal() decimal.Decimal {
	if m == nil || m.m == nil {
		return decimal.Zero
	}
	currency := m.m.Currency()
	return decimal.NewFromInt(m.m.Amount()).Div(decimal.New(1, int32(currency.Fraction)))
}

// FormatINR formats a decimal rupee amount for display.
func FormatINR(amount decimal.Decimal) string {
	return NewFromDecimal(amount).Display()
}
