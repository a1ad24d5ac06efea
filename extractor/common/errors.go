package common

import "errors"

var (
	// ErrUnsupported is returned by an extractor whose applicability guard
	// rejects the document. Callers must treat it differently from an
	// extractor that ran and found nothing.
	ErrUnsupported = errors.New("statement not supported by this extractor")

	// ErrNoTransactions is returned when the right extractor ran but no
	// line matched its transaction pattern.
	ErrNoTransactions = errors.New("no transactions matched")

	// ErrDateFormat marks a row whose date cannot be resolved, either
	// because the source file name carries no recognizable statement date
	// or because the transaction date token is malformed.
	ErrDateFormat = errors.New("date format error")
)
