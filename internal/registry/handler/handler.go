package handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"murima/internal/registry/analytics"
	"murima/internal/registry/export"
	"murima/internal/registry/importer"
	"murima/internal/registry/models"
	"murima/internal/registry/query"
	dErrors "murima/pkg/domain-errors"
	"murima/pkg/platform/httputil"
	"murima/pkg/requestcontext"
)

// Service defines the interface for registry operations.
type Service interface {
	ListRecords(ctx context.Context, req query.Request) (*query.Result, error)
	GetRecord(ctx context.Context, id int64) (*models.Business, error)
	ComputeDashboard(ctx context.Context) (*analytics.Dashboard, error)
	ImportBatch(ctx context.Context, rows []models.Business) (*importer.Result, error)
	Export(ctx context.Context, w io.Writer, req query.Request, opts export.Options) error
}

// Handler wires registry endpoints to the registry service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a registry handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts registry endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/records", h.HandleListRecords)
	r.Get("/records/export", h.HandleExport)
	r.Get("/records/{id}", h.HandleGetRecord)
	r.Post("/records/import", h.HandleImport)
	r.Get("/dashboard", h.HandleDashboard)
}

// HandleListRecords handles GET /records requests.
func (h *Handler) HandleListRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, err := parseListRequest(r.URL.Query())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	result, err := h.service.ListRecords(ctx, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "record listing failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "records listed",
		"request_id", requestID,
		"matched", result.TotalMatched,
		"page", req.Page,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromResult(result, req.Page, req.Query))
}

// HandleGetRecord handles GET /records/{id} requests.
func (h *Handler) HandleGetRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "record id must be an integer"))
		return
	}

	record, err := h.service.GetRecord(ctx, id)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.ErrorContext(ctx, "record lookup failed",
				"request_id", requestcontext.RequestID(ctx),
				"record_id", id,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, record)
}

// HandleDashboard handles GET /dashboard requests.
func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	dashboard, err := h.service.ComputeDashboard(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "dashboard computation failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "dashboard served",
		"request_id", requestID,
		"records", dashboard.Summary.TotalRecords,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, dashboard)
}

// HandleImport handles POST /records/import requests.
func (h *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ImportRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.ImportBatch(ctx, req.Records())
	if err != nil {
		h.logger.ErrorContext(ctx, "batch import failed",
			"request_id", requestID,
			"rows", len(req.Rows),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromImportResult(result))
}

// HandleExport handles GET /records/export requests. The body is CSV, so
// errors after the first byte can only be logged, not reported.
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, err := parseListRequest(r.URL.Query())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	opts, err := parseExportOptions(r.URL.Query())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	filename := fmt.Sprintf("records-%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := h.service.Export(ctx, w, req, opts); err != nil {
		h.logger.ErrorContext(ctx, "export failed",
			"request_id", requestID,
			"error", err,
		)
	}
}
