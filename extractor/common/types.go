package common

import (
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
)

// Kind identifies the issuer/format of a statement document. It is
// determined once per document and drives extractor selection.
type Kind int

const (
	KindUnknown Kind = iota
	KindBoACreditCard
	KindBoAChecking
	KindChaseCreditCard
	KindBestBuyCreditCard
)

func (k Kind) String() string {
	switch k {
	case KindBoACreditCard:
		return "BoA Credit Card"
	case KindBoAChecking:
		return "BoA Checking"
	case KindChaseCreditCard:
		return "Chase Credit Card"
	case KindBestBuyCreditCard:
		return "Best Buy Credit Card"
	default:
		return "Unknown"
	}
}

// RawDocument is one statement file after text extraction. Group is the
// immediate parent directory name, used as an account/category label.
type RawDocument struct {
	Path  string `json:"path"`
	Text  string `json:"-"`
	Group string `json:"group"`
}

func (d RawDocument) FileName() string {
	return filepath.Base(d.Path)
}

// RawTransaction is one matched statement line before year resolution.
// Date is partial: MM/DD for credit cards (truncated from MM/DD/YY for
// checking). Amount keeps the sign as rendered on the statement.
type RawTransaction struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	SourceFile  string          `json:"source_file"`
	SourceDir   string          `json:"source_dir"`
}

// ResolvedTransaction is a RawTransaction with a fully qualified calendar
// date and a content hash. The hash is the dedup/identity key downstream.
type ResolvedTransaction struct {
	Hash        string          `json:"hash"`
	SourceFile  string          `json:"source_file"`
	Date        time.Time       `json:"transaction_date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}
