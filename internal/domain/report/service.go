// Package report orchestrates the analysis pipeline and holds the
// resulting reports for the duration of a browsing session.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/upi-statement-analyzer/internal/domain/categorize"
	"github.com/FACorreiaa/upi-statement-analyzer/internal/domain/statement"
	"github.com/FACorreiaa/upi-statement-analyzer/pkg/metrics"
)

// ErrNoTransactions indicates the PDF was readable but no transaction
// block survived parsing. Like a parse failure it aborts the session
// without partial results.
var ErrNoTransactions = errors.New("no transactions found in statement")

// Adviser produces the advice text for a set of category totals.
type Adviser interface {
	Advise(ctx context.Context, totalsByCategory map[string]decimal.Decimal) string
}

// Row is one rendered transaction. Suggestion carries a fuzzy merchant
// hint for rows the rule table left uncategorized, "" otherwise.
type Row struct {
	statement.Transaction
	Suggestion string
}

// Report is the complete outcome of one statement analysis.
type Report struct {
	ID        string
	CreatedAt time.Time
	ExpiresAt time.Time

	Rows             []Row
	Metrics          Metrics
	TotalsByCategory map[string]decimal.Decimal
	DebitsByCategory map[string]decimal.Decimal
	Advice           string

	BlocksTotal   int
	DroppedBlocks int
	DropReasons   map[string]int
}

// Transactions returns the raw transactions without display decoration.
func (r *Report) Transactions() []statement.Transaction {
	txs := make([]statement.Transaction, len(r.Rows))
	for i, row := range r.Rows {
		txs[i] = row.Transaction
	}
	return txs
}

// Service runs the full pipeline: extract, group, parse, categorize,
// aggregate, advise. One call per uploaded statement.
type Service struct {
	engine  *categorize.Engine
	adviser Adviser
	store   *Store
	tracer  trace.Tracer
	logger  *slog.Logger

	extractFn func([]byte) ([]string, error) // swapped in tests
}

// NewService wires the pipeline stages together.
func NewService(engine *categorize.Engine, adviser Adviser, store *Store, logger *slog.Logger) *Service {
	return &Service{
		engine:    engine,
		adviser:   adviser,
		store:     store,
		tracer:    otel.Tracer("report"),
		logger:    logger,
		extractFn: statement.ExtractLines,
	}
}

// Analyze turns raw PDF bytes into a stored report. Unreadable documents
// and empty statements are fatal for the call; individual malformed
// blocks are dropped and accounted for instead.
func (s *Service) Analyze(ctx context.Context, pdfBytes []byte) (*Report, error) {
	ctx, span := s.tracer.Start(ctx, "report.Analyze")
	defer span.End()

	lines, err := s.extract(ctx, pdfBytes)
	if err != nil {
		metrics.StatementsProcessed.WithLabelValues("parse_error").Inc()
		return nil, err
	}

	parsed := s.parse(ctx, lines)
	if len(parsed.Transactions) == 0 {
		metrics.StatementsProcessed.WithLabelValues("empty").Inc()
		return nil, ErrNoTransactions
	}

	rows := s.categorizeRows(ctx, parsed.Transactions)

	txs := make([]statement.Transaction, len(rows))
	for i, row := range rows {
		txs[i] = row.Transaction
	}

	rep := &Report{
		ID:               uuid.NewString(),
		CreatedAt:        time.Now(),
		Rows:             rows,
		Metrics:          ComputeMetrics(txs),
		TotalsByCategory: TotalsByCategory(txs),
		DebitsByCategory: DebitsByCategory(txs),
		BlocksTotal:      parsed.BlocksTotal,
		DroppedBlocks:    parsed.DroppedBlocks(),
		DropReasons:      dropReasons(parsed.Drops),
	}

	rep.Advice = s.advise(ctx, rep.TotalsByCategory)

	s.store.Put(rep)

	metrics.StatementsProcessed.WithLabelValues("ok").Inc()
	metrics.TransactionsParsed.Add(float64(len(rows)))
	span.SetAttributes(
		attribute.Int("report.transactions", len(rows)),
		attribute.Int("report.dropped_blocks", rep.DroppedBlocks),
	)
	s.logger.Info("statement analyzed",
		slog.String("report_id", rep.ID),
		slog.Int("transactions", len(rows)),
		slog.Int("blocks_total", rep.BlocksTotal),
		slog.Int("dropped_blocks", rep.DroppedBlocks))

	return rep, nil
}

func (s *Service) extract(ctx context.Context, pdfBytes []byte) ([]string, error) {
	_, span := s.tracer.Start(ctx, "statement.extract")
	defer span.End()

	lines, err := s.extractFn(pdfBytes)
	if err != nil {
		s.logger.Warn("statement extraction failed", slog.Any("error", err))
		return nil, fmt.Errorf("extract statement text: %w", err)
	}
	return lines, nil
}

func (s *Service) parse(ctx context.Context, lines []string) *statement.ParseResult {
	_, span := s.tracer.Start(ctx, "statement.parse")
	defer span.End()

	blocks := statement.GroupBlocks(lines)
	parsed := statement.ParseBlocks(blocks)
	for _, drop := range parsed.Drops {
		metrics.BlocksDropped.WithLabelValues(drop.Reason).Inc()
	}
	return parsed
}

func (s *Service) categorizeRows(ctx context.Context, txs []statement.Transaction) []Row {
	_, span := s.tracer.Start(ctx, "categorize")
	defer span.End()

	rows := make([]Row, len(txs))
	for i, tx := range txs {
		tx.Category = s.engine.Categorize(tx.Description)
		row := Row{Transaction: tx}
		if tx.Category == categorize.CategoryOthers {
			row.Suggestion = categorize.SuggestMerchant(tx.Description)
		}
		rows[i] = row
	}
	return rows
}

func (s *Service) advise(ctx context.Context, totals map[string]decimal.Decimal) string {
	ctx, span := s.tracer.Start(ctx, "insights.advise")
	defer span.End()

	return s.adviser.Advise(ctx, totals)
}

func dropReasons(drops []statement.BlockDrop) map[string]int {
	reasons := make(map[string]int, len(drops))
	for _, drop := range drops {
		reasons[drop.Reason]++
	}
	return reasons
}
