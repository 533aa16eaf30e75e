package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"

	"github.com/FACorreiaa/upi-statement-analyzer/pkg/money"
)

// csvRecord is the flat CSV projection of a transaction. Dates are ISO,
// amounts plain decimals with two places, no currency symbol.
type csvRecord struct {
	Date        string `csv:"date"`
	Description string `csv:"description"`
	Amount      string `csv:"amount"`
	Type        string `csv:"type"`
	Category    string `csv:"category"`
}

func toCSVRecords(rows []Row) []*csvRecord {
	records := make([]*csvRecord, len(rows))
	for i, row := range rows {
		records[i] = &csvRecord{
			Date:        row.DateISO(),
			Description: row.Description,
			Amount:      row.Amount.StringFixed(2),
			Type:        string(row.Type),
			Category:    row.Category,
		}
	}
	return records
}

// WriteCSV streams the report's transactions as CSV, header row first,
// one row per transaction in statement order.
func (r *Report) WriteCSV(w io.Writer) error {
	if err := gocsv.Marshal(toCSVRecords(r.Rows), w); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

const (
	sheetTransactions = "Transactions"
	sheetSummary      = "Summary"
)

// WriteXLSX writes the report as a workbook with a transaction sheet and
// a summary sheet of headline metrics and category totals.
func (r *Report) WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetTransactions)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	header := []interface{}{"Date", "Description", "Amount", "Type", "Category"}
	if err := f.SetSheetRow(sheetTransactions, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range r.Rows {
		amount, _ := row.Amount.Float64()
		cells := []interface{}{row.DateISO(), row.Description, amount, string(row.Type), row.Category}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheetTransactions, cell, &cells); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	if err := r.writeSummarySheet(f); err != nil {
		return err
	}

	// Drop the default sheet created by excelize.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func (r *Report) writeSummarySheet(f *excelize.File) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Total Income", money.FormatINR(r.Metrics.TotalIncome)},
		{"Total Expense", money.FormatINR(r.Metrics.TotalExpense)},
		{"Savings", money.FormatINR(r.Metrics.Savings)},
		{"Savings %", r.Metrics.SavingsPercent.StringFixed(2) + "%"},
		{},
		{"Category", "Debit Total"},
	}

	categories := make([]string, 0, len(r.DebitsByCategory))
	for category := range r.DebitsByCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		rows = append(rows, []interface{}{category, money.FormatINR(r.DebitsByCategory[category])})
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheetSummary, cell, &rows[i]); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
	}
	return nil
}
