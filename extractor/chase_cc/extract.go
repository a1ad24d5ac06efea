package chase_cc

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
		Marker:      viper.GetString("statement.CHASE_CREDIT_CARD.marker"),
		WindowStart: viper.GetString("statement.CHASE_CREDIT_CARD.window_start"),
		WindowEnd:   viper.GetString("statement.CHASE_CREDIT_CARD.window_end"),
		Transaction: regexp.MustCompile(viper.GetString("statement.CHASE_CREDIT_CARD.patterns.transaction")),
	}
}

// Extractor handles Chase credit card statements.
type Extractor struct{}

func New() Extractor { return Extractor{} }

func (Extractor) Kind() common.Kind { return common.KindChaseCreditCard }

func (Extractor) Extract(doc common.RawDocument) ([]common.RawTransaction, error) {
	cfg := loadConfig()

	if !strings.Contains(strings.ToLower(doc.Text), cfg.Marker) {
		return nil, common.ErrUnsupported
	}

	window := common.Window(doc.Text, cfg.WindowStart, cfg.WindowEnd)

	matches := cfg.Transaction.FindAllStringSubmatch(window, -1)
	if len(matches) == 0 {
		log.Printf("Warning: no transactions found in Chase credit card statement %s", doc.Path)
		return nil, common.ErrNoTransactions
	}

	transactions := make([]common.RawTransaction, 0, len(matches))
	for _, m := range matches {
		amount, err := common.ParseAmount(m[3])
		if err != nil {
			// rows with unparseable amounts are dropped
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
