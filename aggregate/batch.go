package aggregate

import (
	"errors"
	"log"
	"sync"

	"github.com/Fenix-Okami/finance-tool/extractor"
	"github.com/Fenix-Okami/finance-tool/extractor/common"
)

// extractText is swappable in tests; batch runs always read real PDFs.
var extractText = common.ExtractTextFromPDF

type job struct {
	path  string
	group string
}

type result struct {
	group  string
	file   string
	txns   []common.RawTransaction
	reason string // empty on success
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, extractor.ErrUnknownStatement):
		return "no_parser"
	case errors.Is(err, common.ErrUnsupported):
		return "extractor_mismatch"
	case errors.Is(err, common.ErrNoTransactions):
		return "empty_result"
	default:
		return "parser_failed: " + err.Error()
	}
}

// processOne runs the per-document pipeline. Every failure is converted
// into a recorded reason at this boundary; nothing propagates to abort
// sibling documents.
func processOne(j job) result {
	text, err := extractText(j.path)
	if err != nil {
		return result{group: j.group, file: j.path, reason: "extract_failed: " + err.Error()}
	}

	doc := common.RawDocument{Path: j.path, Text: text, Group: j.group}
	txns, err := extractor.ProcessDocument(doc)
	if err != nil {
		return result{group: j.group, file: j.path, reason: failureReason(err)}
	}

	return result{group: j.group, file: j.path, txns: txns}
}

// processAll fans jobs out to a fixed-size worker pool and merges results
// on the calling goroutine. Workers share nothing but the channels.
func processAll(jobs []job, workers int) ([]common.RawTransaction, []Failure) {
	if workers < 1 {
		workers = 1
	}

	jobCh := make(chan job)
	resCh := make(chan result)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobCh {
				resCh <- processOne(j)
			}
		}()
	}

	go func() {
		for _, j := range jobs {
			jobCh <- j
		}
		close(jobCh)
		wg.Wait()
		close(resCh)
	}()

	var all []common.RawTransaction
	var failures []Failure
	for res := range resCh {
		if res.reason != "" {
			failures = append(failures, Failure{Group: res.group, File: res.file, Reason: res.reason})
			continue
		}
		all = append(all, res.txns...)
	}

	log.Printf("Processed %d documents, %d failed", len(jobs), len(failures))
	return all, failures
}
