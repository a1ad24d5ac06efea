// Package api provides the HTTP upload surface: a single-document
// variant of the extraction pipeline for ad-hoc PDF uploads, plus a CSV
// passthrough for transaction exports that skip PDF parsing entirely.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/Fenix-Okami/finance-tool/aggregate"
	"github.com/Fenix-Okami/finance-tool/extractor"
	"github.com/Fenix-Okami/finance-tool/extractor/common"
	"github.com/gocarina/gocsv"
)

// Config holds the API server configuration
type Config struct {
	Port      string
	LogPrefix string
}

// DefaultConfig returns the default API configuration
func DefaultConfig() Config {
	return Config{
		Port:      ":8080",
		LogPrefix: "API: ",
	}
}

// Server represents the HTTP API server
type Server struct {
	config Config
	mux    *http.ServeMux
}

// New creates a new API server with the given configuration
func New(cfg Config) *Server {
	s := &Server{
		config: cfg,
		mux:    http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/extract", s.handleExtract)
	s.mux.HandleFunc("/health", s.handleHealth)
}

// Handler returns the http.Handler for the server.
// This allows the server to be used with custom http.Server configurations.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the HTTP server (blocking)
func (s *Server) Start() error {
	log.Printf("%sStarting server on %s", s.config.LogPrefix, s.config.Port)
	return http.ListenAndServe(s.config.Port, s.mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// csvRow is the ad-hoc CSV upload schema.
type csvRow struct {
	Date        string `csv:"Date" json:"date"`
	Description string `csv:"Description" json:"description"`
	Amount      string `csv:"Amount" json:"amount"`
}

// handleExtract handles single-document extraction requests
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	log.Printf("%sReceived request from %s", s.config.LogPrefix, r.RemoteAddr)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Parse multipart form with 32MB max memory
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		log.Printf("%sError parsing multipart form: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not parse multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, handler, err := r.FormFile("file")
	if err != nil {
		log.Printf("%sError getting file from form: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not get uploaded file: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		log.Printf("%sError reading file bytes: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not read file: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if strings.EqualFold(filepath.Ext(handler.Filename), ".csv") {
		s.handleCSVUpload(w, fileBytes, handler.Filename)
		return
	}

	group := r.FormValue("group")
	if group == "" {
		group = "upload"
	}
	textOnly := r.FormValue("text_only") == "true" || r.URL.Query().Get("text_only") == "true"

	text, err := common.ExtractTextFromReader(bytes.NewReader(fileBytes))
	if err != nil {
		log.Printf("%sError extracting text: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not extract text from file: "+err.Error(), http.StatusBadRequest)
		return
	}

	if textOnly {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"filename": handler.Filename,
			"text":     text,
		})
		return
	}

	doc := common.RawDocument{Path: handler.Filename, Text: text, Group: group}
	raw, err := extractor.ProcessDocument(doc)
	if err != nil {
		s.writeExtractionError(w, handler.Filename, err)
		return
	}

	resolved, failures := aggregate.Finalize(raw, aggregate.OptionsFromConfig())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"filename":     handler.Filename,
		"group":        group,
		"transactions": aggregate.Rows(resolved),
		"failures":     len(failures),
	})
}

// handleCSVUpload passes an already-tabular transaction export straight
// through as JSON, skipping classification and extraction.
func (s *Server) handleCSVUpload(w http.ResponseWriter, fileBytes []byte, filename string) {
	var rows []csvRow
	if err := gocsv.UnmarshalBytes(fileBytes, &rows); err != nil {
		log.Printf("%sError parsing CSV: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not parse CSV file: "+err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"filename":     filename,
		"transactions": rows,
	})
}

func (s *Server) writeExtractionError(w http.ResponseWriter, filename string, err error) {
	reason := "extraction failed"
	switch {
	case errors.Is(err, extractor.ErrUnknownStatement):
		reason = "no statement markers matched"
	case errors.Is(err, common.ErrUnsupported):
		reason = "extractor rejected the document"
	case errors.Is(err, common.ErrNoTransactions):
		reason = "no transactions found"
	}

	log.Printf("%sExtraction failed for %s: %v", s.config.LogPrefix, filename, err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	json.NewEncoder(w).Encode(map[string]string{
		"filename": filename,
		"error":    reason,
	})
}
