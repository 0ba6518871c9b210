package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"murima/internal/registry/analytics"
	"murima/internal/registry/export"
	"murima/internal/registry/importer"
	"murima/internal/registry/metrics"
	"murima/internal/registry/models"
	"murima/internal/registry/query"
	dErrors "murima/pkg/domain-errors"
	"murima/pkg/platform/sentinel"
)

// RecordStore is the registry's view of a record store.
type RecordStore interface {
	Create(ctx context.Context, b *models.Business) error
	GetByID(ctx context.Context, id int64) (*models.Business, error)
	All(ctx context.Context) ([]models.Business, error)
}

// Service orchestrates the query pipeline, analytics, import, and export over
// one record store.
type Service struct {
	store   RecordStore
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service.
func New(store RecordStore, opts ...Option) *Service {
	s := &Service{store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListRecords runs the filter/search/sort/paginate pipeline over the current
// record snapshot. Returned items are masked for presentation.
func (s *Service) ListRecords(ctx context.Context, req query.Request) (*query.Result, error) {
	start := time.Now()
	records, err := s.store.All(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load records")
	}

	result, err := query.Run(records, req)
	if err != nil {
		return nil, err
	}
	for i := range result.Items {
		result.Items[i] = result.Items[i].Masked()
	}

	s.log(ctx, "records listed",
		"matched", result.TotalMatched,
		"pages", result.TotalPages,
		"returned", len(result.Items))
	if s.metrics != nil {
		s.metrics.IncrementQueries()
		s.metrics.ObserveQuery(start)
	}
	return result, nil
}

// GetRecord returns one record by id, masked for presentation.
func (s *Service) GetRecord(ctx context.Context, id int64) (*models.Business, error) {
	b, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "record not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load record")
	}
	masked := b.Masked()
	return &masked, nil
}

// ComputeDashboard aggregates the full record set into dashboard buckets.
func (s *Service) ComputeDashboard(ctx context.Context) (*analytics.Dashboard, error) {
	start := time.Now()
	records, err := s.store.All(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load records")
	}

	d, err := analytics.ComputeDashboard(ctx, records)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to compute dashboard")
	}

	s.log(ctx, "dashboard computed", "records", d.Summary.TotalRecords)
	if s.metrics != nil {
		s.metrics.ObserveDashboard(start)
	}
	return d, nil
}

// ImportBatch validates and deduplicates rows, inserting what survives.
func (s *Service) ImportBatch(ctx context.Context, rows []models.Business) (*importer.Result, error) {
	result, err := importer.New(s.store).ImportBatch(ctx, rows)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to import batch")
	}

	s.log(ctx, "batch imported",
		"batch_id", result.BatchID,
		"imported", result.Imported,
		"duplicates", result.Duplicates,
		"errors", result.Errors)
	if s.metrics != nil {
		s.metrics.AddImportOutcome("imported", result.Imported)
		s.metrics.AddImportOutcome("duplicate", result.Duplicates)
		s.metrics.AddImportOutcome("error", result.Errors)
	}
	return result, nil
}

// Export streams the currently filtered/sorted/searched set as CSV. The
// request's pagination is overridden: exports always cover every match.
func (s *Service) Export(ctx context.Context, w io.Writer, req query.Request, opts export.Options) error {
	req.Page = 1
	req.PageSize = query.PageSizeAll

	records, err := s.store.All(ctx)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load records")
	}
	result, err := query.Run(records, req)
	if err != nil {
		return err
	}

	if err := export.WriteCSV(w, result.Items, opts); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to write export")
	}

	s.log(ctx, "records exported",
		"rows", len(result.Items),
		"columns", string(opts.Columns),
		"revealed", opts.Reveal)
	if s.metrics != nil {
		s.metrics.IncrementExport(string(opts.Columns))
	}
	return nil
}

func (s *Service) log(ctx context.Context, msg string, args ...any) {
	if s.logger != nil {
		s.logger.InfoContext(ctx, msg, args...)
	}
}
