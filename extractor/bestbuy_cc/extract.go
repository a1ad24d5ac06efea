// Package bestbuy_cc handles Best Buy (Citibank issued) credit card
// statements. The grammar is the same generic date/description/amount
// pattern as Chase and has not been verified against a real Best Buy
// statement layout; it lives behind its own package boundary so it can
// be replaced without touching other issuers.
package bestbuy_cc

import (
	"log"
	"regexp"
	"strings"

	"github.com/Fenix-Okami/finance-tool/extractor/common"
	"github.com/spf13/viper"
)

type config struct {
	Markers     []string
	Transaction *regexp.Regexp
}

func loadConfig() config {
	return config{
		Markers:     viper.GetStringSlice("statement.BESTBUY_CREDIT_CARD.markers"),
		Transaction: regexp.MustCompile(viper.GetString("statement.BESTBUY_CREDIT_CARD.patterns.transaction")),
	}
}

type Extractor struct{}

func New() Extractor { return Extractor{} }

func (Extractor) Kind() common.Kind { return common.KindBestBuyCreditCard }

func (Extractor) Extract(doc common.RawDocument) ([]common.RawTransaction, error) {
	cfg := loadConfig()

	lower := strings.ToLower(doc.Text)
	matched := false
	for _, marker := range cfg.Markers {
		if strings.Contains(lower, marker) {
			matched = true
			break
		}
	}
	if !matched {
		return nil, common.ErrUnsupported
	}

	matches := cfg.Transaction.FindAllStringSubmatch(doc.Text, -1)
	if len(matches) == 0 {
		log.Printf("Warning: no transactions found in Best Buy credit card statement %s", doc.Path)
		return nil, common.ErrNoTransactions
	}

	transactions := make([]common.RawTransaction, 0, len(matches))
	for _, m := range matches {
		amount, err := common.ParseAmount(m[3])
		if err != nil {
			continue
		}
		transactions = append(transactions, common.RawTransaction{
			Date:        m[1],
			Description: strings.TrimSpace(m[2]),
			Amount:      amount,
			SourceFile:  doc.FileName(),
			SourceDir:   doc.Group,
		})
	}

	return transactions, nil
}
