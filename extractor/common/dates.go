package common

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Accepted filename date encodings, tried in order.
var (
	fileDateDashed     = regexp.MustCompile(`(\d{4})-(\d{2})-\d{2}`)
	fileDateStatements = regexp.MustCompile(`(\d{4})(\d{2})\d{2}-statements-`)
)

// StatementDateFromFilename pulls the statement year and month out of a
// source file name. The upstream naming convention embeds either a
// YYYY-MM-DD substring or a YYYYMMDD-statements- substring; anything else
// is ErrDateFormat.
func StatementDateFromFilename(name string) (year string, month string, err error) {
	if m := fileDateDashed.FindStringSubmatch(name); m != nil {
		return m[1], m[2], nil
	}
	if m := fileDateStatements.FindStringSubmatch(name); m != nil {
		return m[1], m[2], nil
	}
	return "", "", ErrDateFormat
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// ResolveDate attaches a year to a partial transaction date using the
// statement date embedded in the source file name. A transaction date
// that already contains a '-' separator is parsed as a full YYYY-MM-DD
// date; otherwise it is treated as MM/DD and combined with the file year.
//
// Statements that open in January can list late-December transactions
// from the prior year, so a December date resolved against a January
// statement is pushed back one year.
func ResolveDate(rawDate, fileName string) (time.Time, error) {
	fileYear, fileMonth, err := StatementDateFromFilename(fileName)
	if err != nil {
		return time.Time{}, err
	}

	var resolved time.Time
	if strings.Contains(rawDate, "-") {
		resolved, err = time.Parse("2006-01-02", rawDate)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrDateFormat, rawDate)
		}
	} else {
		var month, day string
		if strings.Contains(rawDate, "/") {
			parts := strings.SplitN(rawDate, "/", 3)
			if len(parts) < 2 {
				return time.Time{}, fmt.Errorf("%w: %q", ErrDateFormat, rawDate)
			}
			month, day = parts[0], parts[1]
		} else if len(rawDate) >= 4 {
			month, day = rawDate[:2], rawDate[len(rawDate)-2:]
		} else {
			return time.Time{}, fmt.Errorf("%w: %q", ErrDateFormat, rawDate)
		}

		resolved, err = time.Parse("2006-01-02", fmt.Sprintf("%s-%s-%s", fileYear, pad2(month), pad2(day)))
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrDateFormat, rawDate)
		}
	}

	if fileMonth == "01" && resolved.Month() == time.December {
		resolved = time.Date(resolved.Year()-1, resolved.Month(), resolved.Day(), 0, 0, 0, 0, time.UTC)
	}

	return resolved, nil
}
