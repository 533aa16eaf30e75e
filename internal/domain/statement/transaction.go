// Package statement extracts structured transactions from UPI bank
// statement PDFs. The pipeline is extraction (PDF bytes to text lines),
// grouping (lines to per-transaction blocks) and parsing (blocks to
// transactions).
package statement

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxType marks the direction of a transaction.
type TxType string

const (
	TypeCredit TxType = "Credit"
	TypeDebit  TxType = "Debit"
)

// Transaction is a single parsed statement entry. Category is filled in
// by the categorizer after parsing; no field is mutated afterwards.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        TxType
	Category    string
}

// DateISO returns the transaction date in ISO-8601 form (2006-01-02).
func (t Transaction) DateISO() string {
	return t.Date.Format("2006-01-02")
}
