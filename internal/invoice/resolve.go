package invoice

import (
	"strings"

	"github.com/suporteverde/invoice-batch/internal/ingest"
)

// ResolveColumn finds the value of a logical field in a row.
//
// Pass 1 walks exactCandidates in priority order and returns the first
// present, non-empty cell; this ordering decides which of several
// ambiguous columns wins when more than one is populated. Pass 2 walks
// the row's headers in their original order, matching them against
// fallbackKeys after normalization (dots and spaces removed, lowercase).
// When neither pass hits, placeholder is returned.
func ResolveColumn(headers []string, row ingest.RawRow, exactCandidates []string, fallbackKeys map[string]struct{}, placeholder string) string {
	for _, c := range exactCandidates {
		if v, ok := row.Get(c); ok && !ingest.IsEmptyCell(v) {
			return ingest.CellString(v)
		}
	}

	for _, h := range headers {
		if _, ok := fallbackKeys[NormalizeHeader(h)]; !ok {
			continue
		}
		if v, ok := row.Get(h); ok && !ingest.IsEmptyCell(v) {
			return ingest.CellString(v)
		}
	}

	return placeholder
}

// NormalizeHeader reduces a header to its fallback key form.
func NormalizeHeader(h string) string {
	h = strings.ToLower(h)
	h = strings.ReplaceAll(h, ".", "")
	h = strings.ReplaceAll(h, " ", "")
	return h
}
