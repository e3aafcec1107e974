package formatter

import (
	"strconv"
	"strings"
)

// FormatAmount renders v with two decimals and comma thousands separators,
// e.g. -1,234,567.80.
func FormatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return sign + b.String() + "." + frac
}

// FormatPct renders a percentage with two decimals.
func FormatPct(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "%"
}

// FormatDays renders a day count with one decimal.
func FormatDays(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
