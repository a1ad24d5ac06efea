package extractor

import (
	"strings"

	"github.com/Fenix-Okami/finance-tool/extractor/common"
	"github.com/spf13/viper"
)

// Detect inspects document text for issuer markers and returns the
// statement kind. Checks run in a fixed priority order, first match wins:
// the www. domain variant is tried before the bare domain for the Bank of
// America family, so credit card statements never fall through to the
// checking extractor. Pure function of the text; never errors.
func Detect(text string) common.Kind {
	lower := strings.ToLower(text)

	if strings.Contains(lower, viper.GetString("statement.BOA_CREDIT_CARD.marker")) {
		return common.KindBoACreditCard
	}
	if strings.Contains(lower, viper.GetString("statement.BOA_CHECKING.marker")) {
		return common.KindBoAChecking
	}
	if strings.Contains(lower, viper.GetString("statement.CHASE_CREDIT_CARD.marker")) {
		return common.KindChaseCreditCard
	}
	for _, marker := range viper.GetStringSlice("statement.BESTBUY_CREDIT_CARD.markers") {
		if strings.Contains(lower, marker) {
			return common.KindBestBuyCreditCard
		}
	}

	return common.KindUnknown
}
