package seed

import (
	"strings"

	"github.com/shopspring/decimal"
)

// noDataTokens are the placeholder values the published schedule uses where
// no rate applies. They all parse to a zero rate.
var noDataTokens = map[string]bool{
	"-":      true,
	"":       true,
	"nodata": true,
	"nan":    true,
	"b":      true,
}

// ParseScheduleRate parses one raw rate cell from the tariff schedule CSV.
// The source data mixes formats: plain numbers, percentages, currency
// amounts, and specific rates like "J$1230.46 per LPA" or "$17 per stick"
// where only the leading figure is kept. Unparseable cells yield a zero
// rate and false rather than an error so one bad cell never aborts a seed.
func ParseScheduleRate(raw string) (decimal.Decimal, bool) {
	// The source occasionally splits digits with spaces ("37. 4845").
	cleaned := strings.ToLower(strings.Join(strings.Fields(raw), ""))

	if noDataTokens[cleaned] {
		return decimal.Zero, true
	}

	// Specific rates: keep the figure before "per".
	if idx := strings.Index(cleaned, "per"); idx > 0 {
		cleaned = cleaned[:idx]
	}

	if strings.HasSuffix(cleaned, "%") {
		cleaned = strings.TrimSuffix(cleaned, "%")
	}

	// Currency-prefixed amounts keep only the figure. Strings without a
	// currency marker stay as they are so free text fails the parse instead
	// of yielding whatever digits it happens to contain.
	if strings.ContainsAny(cleaned, "$€£") {
		cleaned = stripCurrencyMarkers(cleaned)
	}
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return value, true
}

// stripCurrencyMarkers removes currency prefixes from a rate figure, keeping
// only digits, the decimal point and a leading sign.
func stripCurrencyMarkers(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == ',' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
