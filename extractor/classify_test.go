package extractor

import (
	"bytes"
	"testing"

	"github.com/Fenix-Okami/finance-tool/extractor/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

// Mock config for tests - matches the embedded default config structure
const testConfigYAML = `
statement:
  BOA_CREDIT_CARD:
    marker: www.bankofamerica.com
    window_start: Page 3 of
    window_end: TOTAL PURCHASES AND ADJUSTMENTS
    patterns:
      transaction: (\d{2}/\d{2})\s(\d{2}/\d{2})\s([\w\s\.\*\-]+?)\s(\d{4})\s(\d{4})\s(-?\d+\.\d{2})
  BOA_CHECKING:
    marker: bankofamerica.com
    patterns:
      date_start: ^(\d{2}/\d{2}/\d{2})\s+(.*)
      amount_tail: (-?\$?\d[\d,]*\.\d{2})\s*$
    sections:
      deposits: deposits and other additions
      atm_debit: atm and debit card subtractions
      other_subtractions: other subtractions
  CHASE_CREDIT_CARD:
    marker: www.chase.com
    window_start: Page2 of
    window_end: Total fees charged
    patterns:
      transaction: (\d{2}/\d{2})\s+(.*?)\s+(-?\d+\.\d{2})
  BESTBUY_CREDIT_CARD:
    markers:
      - best buy
      - bestbuy
    patterns:
      transaction: (\d{2}/\d{2})\s+(.*?)\s+(-?\d+\.\d{2})
`

func setupTestConfig() {
	viper.Reset()
	viper.SetConfigType("yaml")
	viper.ReadConfig(bytes.NewBufferString(testConfigYAML))
}

func TestDetect(t *testing.T) {
	setupTestConfig()

	tests := []struct {
		name     string
		text     string
		expected common.Kind
	}{
		{"boa credit card", "visit WWW.BankOfAmerica.com for details", common.KindBoACreditCard},
		{"boa checking", "manage your account at bankofamerica.com today", common.KindBoAChecking},
		{"chase credit card", "see www.chase.com for your rewards", common.KindChaseCreditCard},
		{"best buy spaced", "thank you for shopping at Best Buy stores", common.KindBestBuyCreditCard},
		{"best buy joined", "BESTBUY.COM purchase details", common.KindBestBuyCreditCard},
		{"no markers", "your friendly neighborhood credit union", common.KindUnknown},
		{"empty text", "", common.KindUnknown},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Detect(test.text))
		})
	}
}

func TestDetect_PriorityOrder(t *testing.T) {
	setupTestConfig()

	// The www. variant must win even though the bare domain also matches
	text := "statements at www.bankofamerica.com and bankofamerica.com"
	assert.Equal(t, common.KindBoACreditCard, Detect(text))
}
