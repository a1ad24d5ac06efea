package boa_checking

import (
	"regexp"
	"slices"
	"strings"

	"github.com/Fenix-Okami/finance-tool/extractor/common"
	"github.com/shopspring/decimal"
)

type section int

const (
	noSection section = iota
	inDeposits
	inAtmDebit
	inOtherSubtractions
)

// pendingRecord accumulates a transaction whose description wraps across
// lines, until a trailing amount token terminates it.
type pendingRecord struct {
	date  string // MM/DD/YY as printed on the statement
	parts []string
}

// state is one snapshot of the line scanner: the active section plus any
// record still waiting for its amount. step never mutates a state it was
// given; it returns a fresh one.
type state struct {
	section section
	pending *pendingRecord
}

// record is a completed transaction before output projection.
type record struct {
	date        string
	description string
	amount      decimal.Decimal
}

type machine struct {
	dateStart  *regexp.Regexp
	amountTail *regexp.Regexp
	sections   map[section]string // lower-cased header phrases
}

func newMachine(cfg config) machine {
	return machine{
		dateStart:  cfg.DateStart,
		amountTail: cfg.AmountTail,
		sections: map[section]string{
			inDeposits:          cfg.DepositsHeader,
			inAtmDebit:          cfg.AtmDebitHeader,
			inOtherSubtractions: cfg.OtherSubtractionsHeader,
		},
	}
}

// noise lines are skipped in any state without touching the pending record.
func isNoise(low string) bool {
	switch {
	case strings.HasPrefix(low, "page ") || strings.Contains(low, "continued on the next page"):
		return true
	case strings.HasPrefix(low, "customer service information"):
		return true
	case strings.HasPrefix(low, "important information") || strings.HasPrefix(low, "bank deposit accounts"):
		return true
	case low == "date description amount":
		return true
	case strings.HasPrefix(low, "total deposits and other additions"),
		strings.HasPrefix(low, "total atm and debit card subtractions"),
		strings.HasPrefix(low, "total other subtractions"):
		return true
	}
	return false
}

// step consumes one line and returns the next state, plus a completed
// record if the line terminated one.
func (m machine) step(st state, rawLine string) (state, *record) {
	line := strings.TrimSpace(rawLine)
	if line == "" {
		return st, nil
	}

	low := strings.ToLower(line)
	if isNoise(low) {
		return st, nil
	}

	// A section header switches state and discards any unterminated
	// pending record.
	for sec, header := range m.sections {
		if strings.Contains(low, header) {
			return state{section: sec}, nil
		}
	}

	// Outside a section nothing is a transaction, not even a line ending
	// in an amount token.
	if st.section == noSection {
		return st, nil
	}

	if dm := m.dateStart.FindStringSubmatch(line); dm != nil {
		// A fresh date line replaces any unterminated record.
		pending := &pendingRecord{date: dm[1]}
		rest := strings.TrimSpace(dm[2])
		if rec := m.complete(pending, rest); rec != nil {
			return state{section: st.section}, rec
		}
		pending.parts = []string{rest}
		return state{section: st.section, pending: pending}, nil
	}

	if st.pending != nil {
		if rec := m.complete(st.pending, line); rec != nil {
			return state{section: st.section}, rec
		}
		// Wrapped description: carry the whole line into the pending
		// record of the next state.
		next := &pendingRecord{date: st.pending.date}
		next.parts = append(append(next.parts, st.pending.parts...), line)
		return state{section: st.section, pending: next}, nil
	}

	return st, nil
}

// complete finishes p if line carries a trailing amount token. Text before
// the amount joins the description.
func (m machine) complete(p *pendingRecord, line string) *record {
	loc := m.amountTail.FindStringSubmatchIndex(line)
	if loc == nil {
		return nil
	}

	amount, err := common.ParseAmount(line[loc[2]:loc[3]])
	if err != nil {
		return nil
	}

	parts := slices.Clone(p.parts)
	if extra := strings.TrimSpace(line[:loc[2]]); extra != "" {
		parts = append(parts, extra)
	}

	return &record{
		date:        p.date,
		description: cleanDescription(strings.Join(parts, " "), amount),
		amount:      amount,
	}
}

var (
	spaceRegex        = regexp.MustCompile(`\s+`)
	idMarkerRegex     = regexp.MustCompile(`(?i)\bID:`)
	confMarkerRegex   = regexp.MustCompile(`(?i)\bConf#`)
	trailingDateToken = regexp.MustCompile(`\s*\b\d{2}/\d{2}/\d{2}\b\s*$`)
	trailingJunk      = regexp.MustCompile(`[\s-]+$`)
)

// cleanDescription strips statement boilerplate that leaks into wrapped
// descriptions: everything from an "ID:"/"Conf#" marker or semicolon
// onward, everything from an embedded rendition of the final amount
// onward, a repeated trailing date token, and trailing spaces/hyphens.
func cleanDescription(desc string, amount decimal.Decimal) string {
	s := strings.TrimSpace(spaceRegex.ReplaceAllString(desc, " "))

	var cuts []int
	for _, re := range []*regexp.Regexp{idMarkerRegex, confMarkerRegex} {
		if loc := re.FindStringIndex(s); loc != nil {
			cuts = append(cuts, loc[0])
		}
	}
	if idx := strings.Index(s, ";"); idx != -1 {
		cuts = append(cuts, idx)
	}

	abs := amount.Abs().StringFixed(2)
	variants := []string{groupThousands(abs), abs, "-" + groupThousands(abs), "-" + abs}
	for _, v := range variants {
		if idx := strings.Index(s, v); idx != -1 {
			cuts = append(cuts, idx)
			break
		}
	}

	if len(cuts) > 0 {
		s = strings.TrimRight(s[:slices.Min(cuts)], " ")
	}

	s = trailingDateToken.ReplaceAllString(s, "")
	s = strings.TrimSpace(spaceRegex.ReplaceAllString(s, " "))
	return trailingJunk.ReplaceAllString(s, "")
}

// groupThousands inserts commas into the integer part of a fixed-point
// amount string, e.g. "1200.00" -> "1,200.00".
func groupThousands(fixed string) string {
	intPart, frac, _ := strings.Cut(fixed, ".")
	if len(intPart) <= 3 {
		return fixed
	}
	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return b.String() + "." + frac
}
