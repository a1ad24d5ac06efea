package extractor

import (
	"errors"
	"log"

	"github.com/Fenix-Okami/finance-tool/extractor/bestbuy_cc"
	"github.com/Fenix-Okami/finance-tool/extractor/boa_cc"
	"github.com/Fenix-Okami/finance-tool/extractor/boa_checking"
	"github.com/Fenix-Okami/finance-tool/extractor/chase_cc"
	"github.com/Fenix-Okami/finance-tool/extractor/common"
)

// Extractor is the capability each issuer format implements. Extract
// returns common.ErrUnsupported when its own applicability guard rejects
// the document (wrong extractor), and common.ErrNoTransactions when it
// ran but nothing matched (right extractor, empty statement body).
type Extractor interface {
	Kind() common.Kind
	Extract(doc common.RawDocument) ([]common.RawTransaction, error)
}

// ErrUnknownStatement means no issuer marker matched the document text.
var ErrUnknownStatement = errors.New("no statement markers matched")

// registry is the closed dispatch table from statement kind to extractor.
// Adding an issuer means adding a Kind and an entry here.
var registry = map[common.Kind]Extractor{
	common.KindBoACreditCard:     boa_cc.New(),
	common.KindBoAChecking:       boa_checking.New(),
	common.KindChaseCreditCard:   chase_cc.New(),
	common.KindBestBuyCreditCard: bestbuy_cc.New(),
}

// ProcessDocument classifies the document text and runs the matching
// format extractor.
func ProcessDocument(doc common.RawDocument) ([]common.RawTransaction, error) {
	kind := Detect(doc.Text)
	if kind == common.KindUnknown {
		return nil, ErrUnknownStatement
	}

	ex, ok := registry[kind]
	if !ok {
		return nil, ErrUnknownStatement
	}

	log.Printf("\t📄 Extracting %s transactions from %s", kind, doc.Path)
	return ex.Extract(doc)
}
