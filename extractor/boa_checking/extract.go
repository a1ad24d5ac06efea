// Package boa_checking handles Bank of America checking account
// statements. Unlike the credit card formats there is no single
// transaction regex; a line-oriented state machine tracks the active
// statement section and assembles records whose descriptions wrap across
// lines. See machine.go.
package boa_checking

import (
	"log"
	"regexp"
	"strings"

	"github.com/Fenix-Okami/finance-tool/extractor/common"
	"github.com/spf13/viper"
)

type config struct {
	Marker                  string
	DateStart               *regexp.Regexp
	AmountTail              *regexp.Regexp
	DepositsHeader          string
	AtmDebitHeader          string
	OtherSubtractionsHeader string
}

func loadConfig() config {
	return config{
		Marker:                  viper.GetString("statement.BOA_CHECKING.marker"),
		DateStart:               regexp.MustCompile(viper.GetString("statement.BOA_CHECKING.patterns.date_start")),
		AmountTail:              regexp.MustCompile(viper.GetString("statement.BOA_CHECKING.patterns.amount_tail")),
		DepositsHeader:          viper.GetString("statement.BOA_CHECKING.sections.deposits"),
		AtmDebitHeader:          viper.GetString("statement.BOA_CHECKING.sections.atm_debit"),
		OtherSubtractionsHeader: viper.GetString("statement.BOA_CHECKING.sections.other_subtractions"),
	}
}

type Extractor struct{}

func New() Extractor { return Extractor{} }

func (Extractor) Kind() common.Kind { return common.KindBoAChecking }

func (Extractor) Extract(doc common.RawDocument) ([]common.RawTransaction, error) {
	cfg := loadConfig()

	if !strings.Contains(strings.ToLower(doc.Text), cfg.Marker) {
		return nil, common.ErrUnsupported
	}

	m := newMachine(cfg)
	st := state{}

	var transactions []common.RawTransaction
	for _, line := range strings.Split(doc.Text, "\n") {
		var rec *record
		st, rec = m.step(st, line)
		if rec == nil {
			continue
		}
		transactions = append(transactions, common.RawTransaction{
			// MM/DD/YY truncated to MM/DD; the year is re-derived from
			// the file name like every other format.
			Date:        truncateDate(rec.date),
			Description: rec.description,
			Amount:      rec.amount,
			SourceFile:  doc.FileName(),
			SourceDir:   doc.Group,
		})
	}

	if len(transactions) == 0 {
		log.Printf("Warning: no transactions found in BoA checking statement %s", doc.Path)
		return nil, common.ErrNoTransactions
	}

	return transactions, nil
}

func truncateDate(d string) string {
	if len(d) > 5 {
		return d[:5]
	}
	return d
}
