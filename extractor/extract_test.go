package extractor

import (
	"errors"
	"testing"

	"github.com/Fenix-Okami/finance-tool/extractor/common"
)

func TestProcessDocument_UnknownStatement(t *testing.T) {
	setupTestConfig()

	doc := common.RawDocument{
		Path:  "mystery.pdf",
		Text:  "nothing identifiable in here",
		Group: "misc",
	}

	_, err := ProcessDocument(doc)
	if !errors.Is(err, ErrUnknownStatement) {
		t.Errorf("Expected ErrUnknownStatement, got %v", err)
	}
}

func TestProcessDocument_DispatchesToBoACreditCard(t *testing.T) {
	setupTestConfig()

	doc := common.RawDocument{
		Path: "2024-01-10-statement.pdf",
		Text: "www.bankofamerica.com\n" +
			"Page 3 of 4\n" +
			"01/15 01/16 COFFEE SHOP 1234 5678 -4.50\n" +
			"TOTAL PURCHASES AND ADJUSTMENTS\n",
		Group: "boa_cc",
	}

	transactions, err := ProcessDocument(doc)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(transactions) != 1 {
		t.Fatalf("Expected 1 transaction, got %d", len(transactions))
	}
	if transactions[0].Description != "COFFEE SHOP" {
		t.Errorf("Expected 'COFFEE SHOP', got '%s'", transactions[0].Description)
	}
}

func TestRegistry_CoversAllKnownKinds(t *testing.T) {
	kinds := []common.Kind{
		common.KindBoACreditCard,
		common.KindBoAChecking,
		common.KindChaseCreditCard,
		common.KindBestBuyCreditCard,
	}

	for _, kind := range kinds {
		ex, ok := registry[kind]
		if !ok {
			t.Errorf("No extractor registered for %s", kind)
			continue
		}
		if ex.Kind() != kind {
			t.Errorf("Extractor for %s reports kind %s", kind, ex.Kind())
		}
	}
}
