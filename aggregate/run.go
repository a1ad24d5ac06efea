package aggregate

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

const defaultWorkers = 8

// Run scans root recursively for PDF statements, processes them on the
// configured worker pool, and writes the final table plus the audit file.
// Individual documents fail quietly into the audit list; the run itself
// fails only when the tree yields no documents at all.
func Run(root string) error {
	jobs, err := collectPDFs(root)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return fmt.Errorf("no PDF files found under %s", root)
	}

	log.Printf("📂 Found %d PDF files under %s", len(jobs), root)
	for _, group := range groupCounts(jobs) {
		log.Printf("\t%s", group)
	}

	workers := viper.GetInt("workers")
	if workers == 0 {
		workers = defaultWorkers
	}

	raw, failures := processAll(jobs, workers)

	resolved, dateFailures := Finalize(raw, OptionsFromConfig())
	failures = append(failures, dateFailures...)

	outPath := viper.GetString("output.transactions")
	if err := WriteCSV(outPath, Rows(resolved)); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	log.Printf("Saved %d transactions to %s", len(resolved), outPath)

	if len(failures) > 0 {
		problemsPath := viper.GetString("output.problems")
		if err := WriteAudit(problemsPath, failures); err != nil {
			return fmt.Errorf("writing %s: %w", problemsPath, err)
		}
		log.Printf("Saved problem list to %s (%d entries)", problemsPath, len(failures))
	}

	return nil
}

// collectPDFs walks the tree and tags each PDF with its immediate parent
// directory name, the account/category label for grouping and audit.
func collectPDFs(root string) ([]job, error) {
	var jobs []job
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".pdf") {
			return nil
		}
		jobs = append(jobs, job{path: path, group: filepath.Base(filepath.Dir(path))})
		return nil
	})
	return jobs, err
}

func groupCounts(jobs []job) []string {
	counts := map[string]int{}
	for _, j := range jobs {
		counts[j.group]++
	}
	lines := make([]string, 0, len(counts))
	for group, n := range counts {
		lines = append(lines, fmt.Sprintf("%s: %d files", group, n))
	}
	sort.Strings(lines)
	return lines
}
