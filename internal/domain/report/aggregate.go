package report

import (
	"github.com/shopspring/decimal"

	"github.com/FACorreiaa/upi-statement-analyzer/internal/domain/statement"
)

var hundred = decimal.NewFromInt(100)

// Metrics are the headline numbers of a report. All values are exact
// decimals; rounding happens only at display time.
type Metrics struct {
	TotalIncome    decimal.Decimal
	TotalExpense   decimal.Decimal
	Savings        decimal.Decimal
	SavingsPercent decimal.Decimal
}

// ComputeMetrics sums credits into income and debits into expense.
// Savings may be negative when spending exceeds income. When income is
// zero the savings percentage is defined as zero, never a division error.
func ComputeMetrics(txs []statement.Transaction) Metrics {
	var m Metrics
	for _, tx := range txs {
		if tx.Type == statement.TypeCredit {
			m.TotalIncome = m.TotalIncome.Add(tx.Amount)
		} else {
			m.TotalExpense = m.TotalExpense.Add(tx.Amount)
		}
	}
	m.Savings = m.TotalIncome.Sub(m.TotalExpense)
	if m.TotalIncome.IsPositive() {
		m.SavingsPercent = m.Savings.Div(m.TotalIncome).Mul(hundred)
	}
	return m
}

// TotalsByCategory sums all transaction amounts per category, credits and
// debits alike. This is the summary handed to the advice service.
func TotalsByCategory(txs []statement.Transaction) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}
	return totals
}

// DebitsByCategory sums only debit amounts per category, the series the
// spending chart is drawn from.
func DebitsByCategory(txs []statement.Transaction) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if tx.Type != statement.TypeDebit {
			continue
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}
	return totals
}
