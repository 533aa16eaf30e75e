package server

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/FACorreiaa/upi-statement-analyzer/internal/domain/report"
	"github.com/FACorreiaa/upi-statement-analyzer/internal/domain/statement"
	"github.com/FACorreiaa/upi-statement-analyzer/pkg/config"
)

// Handler serves the upload form, runs analyses and exposes report
// downloads.
type Handler struct {
	svc    *report.Service
	store  *report.Store
	cfg    config.ServerConfig
	logger *slog.Logger
}

// NewHandler creates the HTTP handler set.
func NewHandler(svc *report.Service, store *report.Store, cfg config.ServerConfig, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		store:  store,
		cfg:    cfg,
		logger: logger,
	}
}

func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Error("template render failed",
			slog.String("template", name),
			slog.Any("error", err))
	}
}

func (h *Handler) renderUploadError(w http.ResponseWriter, status int, message string) {
	h.render(w, status, "index", map[string]any{"Error": message})
}

// Index serves the upload form.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "index", map[string]any{})
}

// Analyze accepts a multipart PDF upload, runs the full pipeline and
// renders the report page. A failed analysis renders the upload form
// with an error and produces no partial results.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)

	file, header, err := r.FormFile("statement")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.renderUploadError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("File is too large; the limit is %d MB.", h.cfg.MaxUploadBytes>>20))
			return
		}
		h.renderUploadError(w, http.StatusBadRequest, "Please choose a statement file to upload.")
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		h.renderUploadError(w, http.StatusBadRequest, "Only PDF statements are supported.")
		return
	}

	pdfBytes, err := io.ReadAll(file)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.renderUploadError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("File is too large; the limit is %d MB.", h.cfg.MaxUploadBytes>>20))
			return
		}
		h.logger.Error("reading upload failed", slog.Any("error", err))
		h.renderUploadError(w, http.StatusBadRequest, "Could not read the uploaded file.")
		return
	}

	rep, err := h.svc.Analyze(r.Context(), pdfBytes)
	switch {
	case errors.Is(err, statement.ErrDocumentParse):
		h.renderUploadError(w, http.StatusUnprocessableEntity,
			"That file does not look like a readable PDF statement.")
		return
	case errors.Is(err, report.ErrNoTransactions):
		h.renderUploadError(w, http.StatusUnprocessableEntity,
			"No transactions were found in that statement.")
		return
	case err != nil:
		h.logger.Error("analysis failed", slog.Any("error", err))
		h.renderUploadError(w, http.StatusInternalServerError,
			"Something went wrong while analyzing the statement.")
		return
	}

	h.render(w, http.StatusOK, "report", newReportView(rep))
}

// DownloadCSV streams a stored report's transactions as CSV.
func (h *Handler) DownloadCSV(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.store.Get(r.PathValue("id"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)
	if err := rep.WriteCSV(w); err != nil {
		h.logger.Error("csv export failed",
			slog.String("report_id", rep.ID),
			slog.Any("error", err))
	}
}

// DownloadXLSX streams a stored report as an Excel workbook.
func (h *Handler) DownloadXLSX(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.store.Get(r.PathValue("id"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.xlsx"`)
	if err := rep.WriteXLSX(w); err != nil {
		h.logger.Error("xlsx export failed",
			slog.String("report_id", rep.ID),
			slog.Any("error", err))
	}
}

// Healthz reports liveness.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}
