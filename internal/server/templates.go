package server

import (
	"html/template"

	"github.com/shopspring/decimal"

	"github.com/FACorreiaa/upi-statement-analyzer/internal/domain/categorize"
	"github.com/FACorreiaa/upi-statement-analyzer/internal/domain/insights"
	"github.com/FACorreiaa/upi-statement-analyzer/internal/domain/report"
	"github.com/FACorreiaa/upi-statement-analyzer/pkg/money"
)

// rowView is one transaction table row, amounts pre-formatted.
type rowView struct {
	Date        string
	Description string
	Amount      string
	Type        string
	IsCredit    bool
	Category    string
	Suggestion  string
}

// chartBar is one bar of the debit-by-category chart. Width is a
// percentage of the largest category total.
type chartBar struct {
	Category string
	Total    string
	Width    int
}

// reportView is the fully rendered report page model.
type reportView struct {
	ID             string
	Income         string
	Expense        string
	Savings        string
	SavingsPercent string
	SavingsDown    bool

	Rows   []rowView
	Chart  []chartBar
	Advice string
	// AdviceFailed marks advice produced from a failed service call so the
	// template can style it as a warning instead of guidance.
	AdviceFailed bool

	BlocksTotal   int
	DroppedBlocks int
}

func newReportView(rep *report.Report) reportView {
	view := reportView{
		ID:             rep.ID,
		Income:         money.FormatINR(rep.Metrics.TotalIncome),
		Expense:        money.FormatINR(rep.Metrics.TotalExpense),
		Savings:        money.FormatINR(rep.Metrics.Savings),
		SavingsPercent: rep.Metrics.SavingsPercent.StringFixed(2) + "%",
		SavingsDown:    rep.Metrics.Savings.IsNegative(),
		Advice:         rep.Advice,
		AdviceFailed:   len(rep.Advice) >= len(insights.FailurePrefix) && rep.Advice[:len(insights.FailurePrefix)] == insights.FailurePrefix,
		BlocksTotal:    rep.BlocksTotal,
		DroppedBlocks:  rep.DroppedBlocks,
	}

	for _, row := range rep.Rows {
		view.Rows = append(view.Rows, rowView{
			Date:        row.DateISO(),
			Description: row.Description,
			Amount:      money.FormatINR(row.Amount),
			Type:        string(row.Type),
			IsCredit:    row.Type == "Credit",
			Category:    row.Category,
			Suggestion:  row.Suggestion,
		})
	}

	view.Chart = buildChart(rep.DebitsByCategory)
	return view
}

func buildChart(debits map[string]decimal.Decimal) []chartBar {
	var max decimal.Decimal
	for _, total := range debits {
		if total.GreaterThan(max) {
			max = total
		}
	}
	if !max.IsPositive() {
		return nil
	}

	var bars []chartBar
	for _, category := range categorize.Categories() {
		total, ok := debits[category]
		if !ok || !total.IsPositive() {
			continue
		}
		width := int(total.Div(max).Mul(decimal.NewFromInt(100)).IntPart())
		if width < 2 {
			width = 2
		}
		bars = append(bars, chartBar{
			Category: category,
			Total:    money.FormatINR(total),
			Width:    width,
		})
	}
	return bars
}

var pageTemplates = template.Must(template.New("pages").Parse(`
{{define "index"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>UPI Statement Analyzer</title>
<style>
body{font-family:system-ui,sans-serif;max-width:640px;margin:3rem auto;padding:0 1rem;color:#1a202c}
h1{font-size:1.5rem}
form{border:2px dashed #cbd5e0;border-radius:8px;padding:2rem;text-align:center}
button{margin-top:1rem;padding:.5rem 1.5rem;border:0;border-radius:6px;background:#2b6cb0;color:#fff;cursor:pointer}
.error{background:#fff5f5;border:1px solid #fc8181;border-radius:6px;padding:.75rem 1rem;color:#c53030;margin-bottom:1rem}
.hint{color:#718096;font-size:.85rem}
</style>
</head>
<body>
<h1>UPI Statement Analyzer</h1>
{{if .Error}}<div class="error">{{.Error}}</div>{{end}}
<form action="/analyze" method="post" enctype="multipart/form-data">
<input type="file" name="statement" accept=".pdf" required>
<br>
<button type="submit">Analyze statement</button>
<p class="hint">Upload a UPI bank statement PDF. Nothing is stored after your session ends.</p>
</form>
</body>
</html>{{end}}

{{define "report"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Statement Report</title>
<style>
body{font-family:system-ui,sans-serif;max-width:900px;margin:2rem auto;padding:0 1rem;color:#1a202c}
h1{font-size:1.4rem}
.cards{display:flex;gap:1rem;flex-wrap:wrap}
.card{flex:1;min-width:160px;border:1px solid #e2e8f0;border-radius:8px;padding:1rem}
.card .label{color:#718096;font-size:.8rem;text-transform:uppercase}
.card .value{font-size:1.3rem;font-weight:600}
.card .value.down{color:#c53030}
table{width:100%;border-collapse:collapse;margin-top:1rem;font-size:.9rem}
th,td{text-align:left;padding:.4rem .6rem;border-bottom:1px solid #e2e8f0}
td.amount{text-align:right;white-space:nowrap}
td.credit{color:#2f855a}
.suggestion{color:#718096;font-size:.8rem}
.bar-row{display:flex;align-items:center;gap:.6rem;margin:.3rem 0}
.bar-label{width:8rem;font-size:.85rem}
.bar{background:#2b6cb0;height:1rem;border-radius:3px}
.bar-total{font-size:.85rem;color:#4a5568}
.advice{border:1px solid #e2e8f0;border-radius:8px;padding:1rem;margin-top:1.5rem;white-space:pre-wrap}
.advice.failed{background:#fffaf0;border-color:#f6ad55;color:#975a16}
.downloads a{margin-right:1rem}
footer{margin-top:2rem;color:#718096;font-size:.8rem}
</style>
</head>
<body>
<h1>Statement Report</h1>
<div class="cards">
<div class="card"><div class="label">Total Income</div><div class="value">{{.Income}}</div></div>
<div class="card"><div class="label">Total Expense</div><div class="value">{{.Expense}}</div></div>
<div class="card"><div class="label">Savings</div><div class="value{{if .SavingsDown}} down{{end}}">{{.Savings}} ({{.SavingsPercent}})</div></div>
</div>

{{if .Chart}}
<h2>Spending by category</h2>
{{range .Chart}}
<div class="bar-row">
<span class="bar-label">{{.Category}}</span>
<span class="bar" style="width:{{.Width}}%"></span>
<span class="bar-total">{{.Total}}</span>
</div>
{{end}}
{{end}}

<h2>Transactions</h2>
<table>
<thead><tr><th>Date</th><th>Description</th><th>Amount</th><th>Type</th><th>Category</th></tr></thead>
<tbody>
{{range .Rows}}
<tr>
<td>{{.Date}}</td>
<td>{{.Description}}{{if .Suggestion}}<div class="suggestion">looks like {{.Suggestion}}</div>{{end}}</td>
<td class="amount{{if .IsCredit}} credit{{end}}">{{.Amount}}</td>
<td>{{.Type}}</td>
<td>{{.Category}}</td>
</tr>
{{end}}
</tbody>
</table>

<h2>Advice</h2>
<div class="advice{{if .AdviceFailed}} failed{{end}}">{{.Advice}}</div>

<p class="downloads">
<a href="/reports/{{.ID}}/transactions.csv">Download CSV</a>
<a href="/reports/{{.ID}}/transactions.xlsx">Download XLSX</a>
<a href="/">Analyze another statement</a>
</p>

<footer>
{{if .DroppedBlocks}}{{.DroppedBlocks}} of {{.BlocksTotal}} statement blocks could not be parsed and were skipped.{{else}}All {{.BlocksTotal}} statement blocks parsed cleanly.{{end}}
</footer>
</body>
</html>{{end}}
`))
