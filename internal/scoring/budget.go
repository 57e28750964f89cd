package scoring

import (
	"regexp"
	"strconv"
	"strings"
)

// Budget strings come straight out of conversation ("$15,000", "25k",
// "around $500"), so parsing is a tiered pattern cascade, most specific
// first. The k-suffix form has to win over the plain-digit form or "$25k"
// would be read as 25.
var (
	budgetKPattern     = regexp.MustCompile(`\$?\s*(\d+(?:\.\d+)?)\s*k`)
	budgetPlainPattern = regexp.MustCompile(`\$?\s*(\d{4,})`)
	budgetSmallPattern = regexp.MustCompile(`\$\s*(\d{1,3})(?:\D|$)`)
)

// ParseBudget extracts a numeric dollar amount from a free-form budget
// string. The second return value is false when no amount was found.
func ParseBudget(budget string) (float64, bool) {
	lower := strings.ToLower(strings.ReplaceAll(budget, ",", ""))

	if m := budgetKPattern.FindStringSubmatch(lower); m != nil {
		value, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return value * 1000, true
		}
	}

	if m := budgetPlainPattern.FindStringSubmatch(lower); m != nil {
		value, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return value, true
		}
	}

	// Small amounts like "$500", "$200"
	if m := budgetSmallPattern.FindStringSubmatch(lower); m != nil {
		value, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return value, true
		}
	}

	return 0, false
}
