package web

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/JonMunkholm/pricelist/internal/core"
	"github.com/JonMunkholm/pricelist/internal/logging"
	"github.com/go-chi/chi/v5"
)

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListSchemas returns every schema an upload can be checked against.
func (s *Server) handleListSchemas(w http.ResponseWriter, r *http.Request) {
	all := s.service.Schemas()
	out := make([]schemaResponse, len(all))
	for i, schema := range all {
		out[i] = newSchemaResponse(schema, s.service.DefaultSchema())
	}
	writeJSON(w, http.StatusOK, out)
}

// handleGetSchema returns one schema.
func (s *Server) handleGetSchema(w http.ResponseWriter, r *http.Request) {
	schema, err := s.service.Schema(chi.URLParam(r, "schemaKey"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newSchemaResponse(schema, s.service.DefaultSchema()))
}

// handleDownloadExample serves the example workbook of a schema.
func (s *Server) handleDownloadExample(w http.ResponseWriter, r *http.Request) {
	schemaKey := chi.URLParam(r, "schemaKey")
	schema, err := s.service.Schema(schemaKey)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := s.service.ExampleWorkbook(schema.Key, &buf); err != nil {
		s.respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s_example.xlsx"`, schema.Key))
	if _, err := buf.WriteTo(w); err != nil {
		logging.FromContext(r.Context()).Warn("example download interrupted", "error", err)
	}
}

// handleIngest checks an uploaded price list and returns both buckets.
// Form fields: file (required), sheet (optional).
func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	maxSize := s.cfg.Upload.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+multipartOverhead)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			s.respondError(w, r, fmt.Errorf("file too large: %w", err))
			return
		}
		s.respondError(w, r, fmt.Errorf("%w: %v", core.ErrNoFile, err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, r, core.ErrNoFile)
		return
	}
	defer file.Close()

	result, err := s.service.Ingest(WithRequestMetadata(r.Context(), r), core.IngestRequest{
		SchemaKey: chi.URLParam(r, "schemaKey"),
		SheetName: r.FormValue("sheet"),
		FileName:  header.Filename,
		Reader:    file,
		Size:      header.Size,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newIngestResponse(result))
}

// handleIngestStatus reports ingestion slot usage.
func (s *Server) handleIngestStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.LimiterStatus())
}
