package common

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var nonAmountRegex = regexp.MustCompile(`[^0-9.\-]`)

// ParseAmount parses a currency token into a decimal, stripping dollar
// signs and thousands separators but keeping the sign.
func ParseAmount(text string) (decimal.Decimal, error) {
	clean := nonAmountRegex.ReplaceAllString(text, "")
	if clean == "" {
		return decimal.Zero, fmt.Errorf("no amount in %q", text)
	}
	amount, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// Window narrows text to the substring between the first occurrence of
// start and the next occurrence of end. If either marker is absent the
// full text is returned.
func Window(text, start, end string) string {
	startIdx := strings.Index(text, start)
	if startIdx == -1 {
		return text
	}
	endIdx := strings.Index(text[startIdx:], end)
	if endIdx == -1 {
		return text
	}
	return text[startIdx : startIdx+endIdx]
}
