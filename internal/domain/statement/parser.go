package statement

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// dateRe finds the first "05 Jan 24" style token anywhere in a block.
	dateRe = regexp.MustCompile(`\d{2} [A-Za-z]{3} \d{2}`)

	// amountRe finds a decimal amount with optional comma grouping and
	// exactly two decimal places, e.g. "1,234.56" or "50.00".
	amountRe = regexp.MustCompile(`\d{1,3}(?:,\d{3})*\.\d{2}`)
)

const dateLayout = "02 Jan 06"

// Drop reasons recorded for blocks that yield no transaction.
const (
	DropNoDate    = "no_date"
	DropNoAmount  = "no_amount"
	DropBadDate   = "bad_date"
	DropBadAmount = "bad_amount"
)

// BlockDrop records a block that failed field extraction. Drops are data,
// not errors: a malformed block never aborts the run.
type BlockDrop struct {
	Block  string
	Reason string
}

// ParseResult contains the transactions parsed from a statement's blocks
// together with drop accounting, so BlocksTotal always equals
// len(Transactions) + len(Drops).
type ParseResult struct {
	Transactions []Transaction
	Drops        []BlockDrop
	BlocksTotal  int
}

// DroppedBlocks returns the number of blocks that yielded no transaction.
func (r *ParseResult) DroppedBlocks() int {
	return len(r.Drops)
}

// ParseBlocks extracts a Transaction from each block that contains both a
// date and an amount token. The description is the block text with the
// FIRST date occurrence removed; later date-like substrings stay in place.
func ParseBlocks(blocks []string) *ParseResult {
	result := &ParseResult{
		Transactions: make([]Transaction, 0, len(blocks)),
		BlocksTotal:  len(blocks),
	}

	for _, block := range blocks {
		tx, reason := parseBlock(block)
		if reason != "" {
			result.Drops = append(result.Drops, BlockDrop{Block: block, Reason: reason})
			continue
		}
		result.Transactions = append(result.Transactions, tx)
	}

	return result
}

func parseBlock(block string) (Transaction, string) {
	dateToken := dateRe.FindString(block)
	if dateToken == "" {
		return Transaction{}, DropNoDate
	}

	amountToken := amountRe.FindString(block)
	if amountToken == "" {
		return Transaction{}, DropNoAmount
	}

	date, err := time.Parse(dateLayout, dateToken)
	if err != nil {
		return Transaction{}, DropBadDate
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(amountToken, ",", ""))
	if err != nil {
		return Transaction{}, DropBadAmount
	}

	upper := strings.ToUpper(block)
	txType := TypeDebit
	if strings.Contains(upper, "RETURN") || strings.Contains(upper, "INTEREST") {
		txType = TypeCredit
	}

	return Transaction{
		Date:        date,
		Description: cleanDescription(strings.Replace(block, dateToken, "", 1)),
		Amount:      amount,
		Type:        txType,
	}, ""
}

// cleanDescription trims and collapses runs of spaces left behind after
// removing the date token.
func cleanDescription(s string) string {
	s = strings.TrimSpace(s)
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return s
}
