// Package invoice implements the row-to-invoice transformation: emission
// date policies, column resolution over ambiguous headers, currency
// normalization and the content fingerprint used for deduplication.
package invoice

import (
	"strconv"
	"strings"
)

// ParseAmount normalizes a heterogeneous currency cell into a float.
// Numbers pass through unchanged. Text has the R$ symbol and whitespace
// stripped, thousands dots removed and the decimal comma swapped for a
// point before parsing. Anything unparseable yields 0.0: a single bad
// cell never fails a batch.
func ParseAmount(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case nil:
		return 0.0
	case string:
		f, ok := tryParseAmount(t)
		if !ok {
			return 0.0
		}
		return f
	}
	return 0.0
}

// tryParseAmount parses Brazilian currency text, reporting success so
// callers choose the default deliberately.
func tryParseAmount(s string) (float64, bool) {
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// FormatAmount renders a canonical value as Brazilian display currency:
// "R$ " prefix, thousands '.', decimal ',', two decimals. Host locale
// plays no part.
func FormatAmount(f float64) string {
	neg := f < 0
	if neg {
		f = -f
	}

	s := strconv.FormatFloat(f, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return "R$ " + b.String() + "," + fracPart
}
