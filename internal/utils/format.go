package utils

import (
	"fmt"
	"strings"
)

// ToFixed formats a value with a fixed number of fraction digits.
func ToFixed(value float64, digits int) string {
	return fmt.Sprintf("%.*f", digits, value)
}

// ToDollar formats a USD value as a currency string with comma grouping,
// e.g. 3601000 -> "$3,601,000.00".
func ToDollar(value float64) string {
	return "$" + addCommas(fmt.Sprintf("%.2f", value))
}

// ToPercent formats a percentage value with four fraction digits and a
// trailing percent sign.
func ToPercent(value float64) string {
	return ToFixed(value, 4) + "%"
}

func addCommas(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]
	n := len(intPart)
	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	out := b.String()
	if len(parts) == 2 {
		out += "." + parts[1]
	}
	if neg {
		out = "-" + out
	}
	return out
}
