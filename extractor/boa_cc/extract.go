package boa_cc

import (
	"log"
	"regexp"
	"strings"

	"github.com/Fenix-Okami/finance-tool/extractor/common"
	"github.com/spf13/viper"
)

type config struct {
	Marker      string
	WindowStart string
	WindowEnd   string
	Transaction *regexp.Regexp
}

func loadConfig() config {
	return config{
		Marker:      viper.GetString("statement.BOA_CREDIT_CARD.marker"),
		WindowStart: viper.GetString("statement.BOA_CREDIT_CARD.window_start"),
		WindowEnd:   viper.GetString("statement.BOA_CREDIT_CARD.window_end"),
		Transaction: regexp.MustCompile(viper.GetString("statement.BOA_CREDIT_CARD.patterns.transaction")),
	}
}

// Extractor handles Bank of America credit card statements. The
// transaction pattern captures transaction date, posting date,
// description, a 4-digit reference number, a 4-digit account suffix and
// the signed amount; only date, description and amount survive into the
// output projection.
type Extractor struct{}

func New() Extractor { return Extractor{} }

func (Extractor) Kind() common.Kind { return common.KindBoACreditCard }

func (Extractor) Extract(doc common.RawDocument) ([]common.RawTransaction, error) {
	cfg := loadConfig()

	if !strings.Contains(strings.ToLower(doc.Text), cfg.Marker) {
		return nil, common.ErrUnsupported
	}

	window := common.Window(doc.Text, cfg.WindowStart, cfg.WindowEnd)

	matches := cfg.Transaction.FindAllStringSubmatch(window, -1)
	if len(matches) == 0 {
		log.Printf("Warning: no transactions found in BoA credit card statement %s", doc.Path)
		return nil, common.ErrNoTransactions
	}

	transactions := make([]common.RawTransaction, 0, len(matches))
	for _, m := range matches {
		// m[1]=transaction date, m[2]=posting date, m[3]=description,
		// m[4]=reference, m[5]=account suffix, m[6]=amount
		amount, err := common.ParseAmount(m[6])
		if err != nil {
			continue
		}
		transactions = append(transactions, common.RawTransaction{
			Date:        m[1],
			Description: strings.TrimSpace(m[3]),
			Amount:      amount,
			SourceFile:  doc.FileName(),
			SourceDir:   doc.Group,
		})
	}

	return transactions, nil
}
