// Package aggregate merges per-document transaction tables into the
// final dataset: year resolution, content hashing, sign filtering,
// deterministic sorting and file output, with an audit trail of
// per-document failures.
package aggregate

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"
	"time"

	"github.com/Fenix-Okami/finance-tool/extractor/common"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Failure records one document (or row) that contributed nothing to the
// final table, for the audit output.
type Failure struct {
	Group  string
	File   string
	Reason string
}

// Options control the finalization pass.
type Options struct {
	// PositiveOnly keeps only debit/purchase rows (amount > 0) in the
	// final table. Checking deposits and card refunds carry their sign
	// through extraction; filtering them out is a pipeline policy.
	PositiveOnly bool
}

func OptionsFromConfig() Options {
	return Options{PositiveOnly: viper.GetBool("filter.positive_only")}
}

// Hash computes the content hash keying a resolved transaction: a
// SHA-256 digest over resolved date, description, amount and source file
// name, hex-encoded. The same transaction exported under two different
// file names hashes differently on purpose.
func Hash(date time.Time, description string, amount decimal.Decimal, sourceFile string) string {
	sum := sha256.Sum256([]byte(date.Format("2006-01-02") + description + amount.StringFixed(2) + sourceFile))
	return hex.EncodeToString(sum[:])
}

// Finalize resolves years, hashes, filters and sorts the merged raw
// tables. Rows whose dates cannot be resolved go to the failure list
// instead of entering the table with a sentinel date.
func Finalize(raw []common.RawTransaction, opts Options) ([]common.ResolvedTransaction, []Failure) {
	resolved := make([]common.ResolvedTransaction, 0, len(raw))
	var failures []Failure

	for _, tx := range raw {
		date, err := common.ResolveDate(tx.Date, tx.SourceFile)
		if err != nil {
			failures = append(failures, Failure{Group: tx.SourceDir, File: tx.SourceFile, Reason: "date_format_error"})
			continue
		}
		if opts.PositiveOnly && !tx.Amount.IsPositive() {
			continue
		}
		resolved = append(resolved, common.ResolvedTransaction{
			Hash:        Hash(date, tx.Description, tx.Amount, tx.SourceFile),
			SourceFile:  tx.SourceFile,
			Date:        date,
			Description: tx.Description,
			Amount:      tx.Amount,
		})
	}

	slices.SortFunc(resolved, func(a, b common.ResolvedTransaction) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		if c := strings.Compare(a.Description, b.Description); c != 0 {
			return c
		}
		return a.Amount.Cmp(b.Amount)
	})

	return resolved, failures
}
