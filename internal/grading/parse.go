package grading

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// parseGrade reads the longest decimal literal at the start of s, ignoring
// surrounding whitespace. Trailing garbage is dropped ("2.5abc" is 2.5) and
// an incomplete fraction or exponent is tolerated ("3." is 3, "1e" is 1).
// Literals whose exponent puts them off the 1.0-5.0 scale are reported as
// not ok without being built, so "1e2000000000" costs nothing.
func parseGrade(s string) (decimal.Decimal, bool) {
	lit, ok := leadingNumber(strings.TrimSpace(s))
	if !ok {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(lit)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// leadingNumber returns a canonical literal ("-0.5", "3", "1.2e3") for the
// numeric prefix of s.
func leadingNumber(s string) (string, bool) {
	var b strings.Builder
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			b.WriteByte('-')
		}
		i++
	}
	intStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intPart := s[intStart:i]

	var fracPart string
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		fracPart = s[i+1 : j]
		i = j
	}
	if intPart == "" && fracPart == "" {
		return "", false
	}
	if intPart == "" {
		intPart = "0"
	}
	b.WriteString(intPart)
	if fracPart != "" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		sign := ""
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			if s[j] == '-' {
				sign = "-"
			}
			j++
		}
		expStart := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > expStart {
			exp, err := strconv.Atoi(sign + s[expStart:j])
			if err != nil || !expOnScale(exp, len(intPart), len(fracPart)) {
				return "", false
			}
			b.WriteByte('e')
			b.WriteString(sign)
			b.WriteString(s[expStart:j])
		}
	}
	return b.String(), true
}

// expOnScale reports whether mantissa x 10^exp can land in [1, 10). A
// nonzero mantissa with intDigits integer and fracDigits fraction digits
// lies in [10^-fracDigits, 10^intDigits).
func expOnScale(exp, intDigits, fracDigits int) bool {
	return exp > -intDigits && exp <= fracDigits
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
