package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/upi-statement-analyzer/internal/domain/categorize"
	"github.com/FACorreiaa/upi-statement-analyzer/internal/domain/statement"
)

func tx(amount string, txType statement.TxType, category string) statement.Transaction {
	return statement.Transaction{
		Amount:   decimal.RequireFromString(amount),
		Type:     txType,
		Category: category,
	}
}

func TestComputeMetrics(t *testing.T) {
	t.Run("IncomeExpenseAndSavings", func(t *testing.T) {
		m := ComputeMetrics([]statement.Transaction{
			tx("1000.00", statement.TypeCredit, categorize.CategoryIncome),
			tx("400.00", statement.TypeDebit, categorize.CategoryFood),
			tx("100.00", statement.TypeDebit, categorize.CategoryUtilities),
		})

		assert.True(t, m.TotalIncome.Equal(decimal.RequireFromString("1000.00")))
		assert.True(t, m.TotalExpense.Equal(decimal.RequireFromString("500.00")))
		assert.True(t, m.Savings.Equal(decimal.RequireFromString("500.00")))
		assert.True(t, m.SavingsPercent.Equal(decimal.NewFromInt(50)))
	})

	t.Run("ZeroIncomeMeansZeroPercent", func(t *testing.T) {
		m := ComputeMetrics([]statement.Transaction{
			tx("250.00", statement.TypeDebit, categorize.CategoryFood),
		})

		assert.True(t, m.TotalIncome.IsZero())
		assert.True(t, m.SavingsPercent.IsZero())
		assert.True(t, m.Savings.IsNegative())
	})

	t.Run("NoTransactions", func(t *testing.T) {
		m := ComputeMetrics(nil)
		assert.True(t, m.TotalIncome.IsZero())
		assert.True(t, m.TotalExpense.IsZero())
		assert.True(t, m.SavingsPercent.IsZero())
	})
}

func TestTotalsByCategory(t *testing.T) {
	totals := TotalsByCategory([]statement.Transaction{
		tx("100.00", statement.TypeDebit, categorize.CategoryFood),
		tx("50.00", statement.TypeDebit, categorize.CategoryFood),
		tx("1000.00", statement.TypeCredit, categorize.CategoryIncome),
	})

	assert.Len(t, totals, 2)
	assert.True(t, totals[categorize.CategoryFood].Equal(decimal.RequireFromString("150.00")))
	assert.True(t, totals[categorize.CategoryIncome].Equal(decimal.RequireFromString("1000.00")))
}

func TestDebitsByCategory(t *testing.T) {
	totals := DebitsByCategory([]statement.Transaction{
		tx("100.00", statement.TypeDebit, categorize.CategoryFood),
		tx("1000.00", statement.TypeCredit, categorize.CategoryIncome),
	})

	assert.Len(t, totals, 1)
	assert.True(t, totals[categorize.CategoryFood].Equal(decimal.RequireFromString("100.00")))
	_, ok := totals[categorize.CategoryIncome]
	assert.False(t, ok, "credits must not appear in the spending series")
}
