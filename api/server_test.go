package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer() *Server {
	return New(DefaultConfig())
}

func TestHealth(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status 'ok', got '%s'", body["status"])
	}
}

func TestExtract_MethodNotAllowed(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/extract", nil)
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", rr.Code)
	}
}

func TestExtract_MissingFile(t *testing.T) {
	srv := newTestServer()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	writer.WriteField("group", "upload")
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/extract", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 without a file part, got %d", rr.Code)
	}
}

func TestExtract_CSVUpload(t *testing.T) {
	srv := newTestServer()

	csvData := "Date,Description,Amount\n2024-01-05,COFFEE SHOP,4.50\n2024-01-06,AIRLINE TICKETS,320.99\n"

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "export.csv")
	if err != nil {
		t.Fatalf("Creating form file failed: %v", err)
	}
	part.Write([]byte(csvData))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/extract", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var body struct {
		Filename     string   `json:"filename"`
		Transactions []csvRow `json:"transactions"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if body.Filename != "export.csv" {
		t.Errorf("Expected filename 'export.csv', got '%s'", body.Filename)
	}
	if len(body.Transactions) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(body.Transactions))
	}
	if body.Transactions[0].Description != "COFFEE SHOP" || body.Transactions[0].Amount != "4.50" {
		t.Errorf("Unexpected first row: %+v", body.Transactions[0])
	}
}

func TestExtract_MalformedCSV(t *testing.T) {
	srv := newTestServer()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, _ := writer.CreateFormFile("file", "broken.csv")
	part.Write([]byte("Date,Description,Amount\n\"unterminated,quote\n"))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/extract", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed CSV, got %d", rr.Code)
	}
}
