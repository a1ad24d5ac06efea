package aggregate

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Fenix-Okami/finance-tool/extractor/common"
	"github.com/gocarina/gocsv"
)

// Row is one line of the final output table.
type Row struct {
	Hash        string `csv:"Hash"`
	SourceFile  string `csv:"Source File"`
	Date        string `csv:"Transaction Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
}

// Rows projects resolved transactions onto the output schema: ISO dates
// and amounts with exactly two fractional digits.
func Rows(resolved []common.ResolvedTransaction) []Row {
	rows := make([]Row, 0, len(resolved))
	for _, tx := range resolved {
		rows = append(rows, Row{
			Hash:        tx.Hash,
			SourceFile:  tx.SourceFile,
			Date:        tx.Date.Format("2006-01-02"),
			Description: tx.Description,
			Amount:      tx.Amount.StringFixed(2),
		})
	}
	return rows
}

// WriteCSV writes the final table, creating the output directory if
// needed.
func WriteCSV(path string, rows []Row) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return gocsv.MarshalFile(&rows, file)
}

// WriteAudit writes the failed-document list as sorted, deduplicated
// tab-separated (group, file, reason) rows.
func WriteAudit(path string, failures []Failure) error {
	lines := make([]string, 0, len(failures))
	seen := make(map[string]bool, len(failures))
	for _, f := range failures {
		line := f.Group + "\t" + f.File + "\t" + f.Reason
		if seen[line] {
			continue
		}
		seen[line] = true
		lines = append(lines, line)
	}
	slices.Sort(lines)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte("# group\tfile\treason\n"+strings.Join(lines, "\n")+"\n"), 0o644)
}
