package utils

import (
	"fmt"
	"strings"
)

// FormatCurrencyINR formats an amount using Indian digit grouping, e.g.
// 123456.5 -> "Rs. 1,23,456.50". Whole amounts drop the decimals: "Rs. 45".
// "Rs." is used instead of the rupee sign so the PDF core fonts can render it.
func FormatCurrencyINR(amount float64) string {
	formatted := fmt.Sprintf("%.2f", amount)

	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	negative := strings.HasPrefix(integerPart, "-")
	if negative {
		integerPart = integerPart[1:]
	}

	// Indian grouping: rightmost group of 3, then groups of 2
	var groups []string
	if len(integerPart) > 3 {
		groups = append(groups, integerPart[len(integerPart)-3:])
		rest := integerPart[:len(integerPart)-3]
		for len(rest) > 2 {
			groups = append([]string{rest[len(rest)-2:]}, groups...)
			rest = rest[:len(rest)-2]
		}
		if rest != "" {
			groups = append([]string{rest}, groups...)
		}
	} else {
		groups = []string{integerPart}
	}

	out := strings.Join(groups, ",")
	if decimalPart != "00" {
		out = out + "." + decimalPart
	}
	if negative {
		out = "-" + out
	}
	return "Rs. " + out
}
