package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/JonMunkholm/pricelist/internal/config"
	"github.com/JonMunkholm/pricelist/internal/logging"
	"github.com/JonMunkholm/pricelist/internal/workbook"
	"github.com/google/uuid"
)

// Service runs price list ingestion for the web and CLI front ends.
type Service struct {
	registry      *Registry
	limiter       *IngestLimiter
	defaultSchema string
	maxFileSize   int64
	timeout       time.Duration
}

// IngestRequest describes one uploaded workbook.
type IngestRequest struct {
	SchemaKey string    // Empty selects the configured default schema
	SheetName string    // Empty selects the schema's sheet
	FileName  string    // Used to pick the reader by extension
	Reader    io.Reader // File contents
	Size      int64     // Declared size, if known; 0 when unknown
}

// NewService creates a Service over the schemas in reg.
func NewService(reg *Registry, cfg *config.Config) *Service {
	return &Service{
		registry:      reg,
		limiter:       NewIngestLimiter(cfg.Upload.MaxConcurrent, cfg.Upload.MaxWaitTime),
		defaultSchema: cfg.Ingest.DefaultSchema,
		maxFileSize:   cfg.Upload.MaxFileSize,
		timeout:       cfg.Upload.Timeout,
	}
}

// Schemas returns every registered schema sorted by key.
func (s *Service) Schemas() []*Schema {
	return s.registry.All()
}

// Schema resolves a schema key; an empty key selects the default schema.
func (s *Service) Schema(key string) (*Schema, error) {
	if key == "" {
		key = s.defaultSchema
	}
	return s.registry.Lookup(key)
}

// DefaultSchema returns the key used when a request names no schema.
func (s *Service) DefaultSchema() string {
	return s.defaultSchema
}

// ExampleWorkbook writes the example workbook of a schema as xlsx.
func (s *Service) ExampleWorkbook(key string, w io.Writer) error {
	schema, err := s.Schema(key)
	if err != nil {
		return err
	}
	return workbook.WriteExample(w, schema.SheetName, schema.Example)
}

// Ingest reads the uploaded workbook and classifies its rows.
//
// Returns ErrTooManyIngests if no slot frees up in time. Whole-file problems
// (unknown schema, unsupported or empty file, missing sheet or columns)
// are returned as errors; row problems end up in the invalid bucket.
func (s *Service) Ingest(ctx context.Context, req IngestRequest) (*IngestResult, error) {
	schema, err := s.Schema(req.SchemaKey)
	if err != nil {
		return nil, err
	}
	if req.Reader == nil {
		return nil, ErrNoFile
	}
	if req.Size > s.maxFileSize {
		return nil, fmt.Errorf("file too large: %d bytes exceeds limit of %d", req.Size, s.maxFileSize)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	defer s.limiter.Release()

	runID := uuid.New().String()
	sheetName := req.SheetName
	if sheetName == "" {
		sheetName = schema.SheetName
	}

	fields := append([]any{
		"run_id", runID,
		"schema", schema.Key,
		"file", req.FileName,
		"sheet", sheetName,
	}, callerFields(ctx)...)
	logger := logging.WithFields(ctx, fields...)
	logger.Info("ingest started")
	start := time.Now()

	data, err := s.readUpload(req.Reader)
	if err != nil {
		logger.Warn("ingest rejected", "error", err)
		return nil, err
	}

	book, err := workbook.Open(req.FileName, bytes.NewReader(data), sheetName)
	if err != nil {
		logger.Warn("ingest rejected", "error", err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pl, err := Ingest(book, schema, sheetName)
	if err != nil {
		var sheetErr *SheetNotFoundError
		if errors.As(err, &sheetErr) {
			logger.Warn("ingest rejected", "error", err, "available_sheets", sheetErr.Available)
		} else {
			logger.Warn("ingest rejected", "error", err)
		}
		return nil, err
	}

	result := &IngestResult{
		RunID:     runID,
		SchemaKey: schema.Key,
		FileName:  req.FileName,
		SheetName: sheetName,
		PriceList: pl,
		Duration:  time.Since(start),
	}

	counts := pl.Counts()
	logger.Info("ingest completed",
		"total", counts.Total,
		"valid", counts.Valid,
		"invalid", counts.Invalid,
		"duration", result.Duration,
	)
	return result, nil
}

// readUpload reads the whole file, enforcing the size limit.
func (s *Service) readUpload(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxFileSize {
		return nil, fmt.Errorf("file too large: exceeds limit of %d bytes", s.maxFileSize)
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	return data, nil
}

// LimiterStatus reports ingestion slot usage.
func (s *Service) LimiterStatus() LimiterStatus {
	return s.limiter.Status()
}

// WaitForIngests blocks until in-flight ingests finish or ctx is done.
func (s *Service) WaitForIngests(ctx context.Context) error {
	return s.limiter.WaitForDrain(ctx)
}
