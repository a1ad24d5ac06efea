package aggregate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Fenix-Okami/finance-tool/extractor/common"
	"github.com/shopspring/decimal"
)

func TestRows_Projection(t *testing.T) {
	resolved := []common.ResolvedTransaction{
		{
			Hash:        "abc123",
			SourceFile:  "2024-02-05-statement.pdf",
			Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			Description: "COFFEE SHOP",
			Amount:      decimal.RequireFromString("4.5"),
		},
	}

	rows := Rows(resolved)
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if rows[0].Date != "2024-01-05" {
		t.Errorf("Expected ISO date, got '%s'", rows[0].Date)
	}
	if rows[0].Amount != "4.50" {
		t.Errorf("Expected two fractional digits, got '%s'", rows[0].Amount)
	}
}

func TestWriteCSV_HeaderAndContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "transactions.csv")

	rows := []Row{
		{Hash: "abc123", SourceFile: "a.pdf", Date: "2024-01-05", Description: "COFFEE SHOP", Amount: "4.50"},
	}
	if err := WriteCSV(path, rows); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading output failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected header plus 1 row, got %d lines", len(lines))
	}
	if lines[0] != "Hash,Source File,Transaction Date,Description,Amount" {
		t.Errorf("Unexpected header: '%s'", lines[0])
	}
	if lines[1] != "abc123,a.pdf,2024-01-05,COFFEE SHOP,4.50" {
		t.Errorf("Unexpected row: '%s'", lines[1])
	}
}

func TestWriteAudit_SortedAndDeduplicated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problems.txt")

	failures := []Failure{
		{Group: "checking", File: "z.pdf", Reason: "empty_result"},
		{Group: "cc", File: "a.pdf", Reason: "no_parser"},
		{Group: "cc", File: "a.pdf", Reason: "no_parser"},
	}
	if err := WriteAudit(path, failures); err != nil {
		t.Fatalf("WriteAudit failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading audit failed: %v", err)
	}
	want := "# group\tfile\treason\n" +
		"cc\ta.pdf\tno_parser\n" +
		"checking\tz.pdf\tempty_result\n"
	if string(data) != want {
		t.Errorf("Unexpected audit content:\n%q\nwant:\n%q", string(data), want)
	}
}
