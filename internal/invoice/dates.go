package invoice

import (
	"time"

	"github.com/suporteverde/invoice-batch/constants"
	"github.com/suporteverde/invoice-batch/internal/entity"
	"github.com/suporteverde/invoice-batch/internal/ingest"
)

// ResolveEmissionDate produces a row's emission date under the request
// policy. now is the batch processing instant, injected so the fallback
// behavior is testable.
//
// Custom dates that fail to parse and sale-date columns that are absent
// or empty both fall back to the processing date silently; a bad date
// never fails a row.
func ResolveEmissionDate(policy entity.DatePolicy, row ingest.RawRow, now time.Time) string {
	current := now.Format(constants.DisplayDateLayout)

	switch policy.Mode {
	case entity.DateCustom:
		if policy.CustomDate == "" {
			return current
		}
		t, err := time.Parse(constants.InputDateLayout, policy.CustomDate)
		if err != nil {
			return current
		}
		return t.Format(constants.DisplayDateLayout)

	case entity.DateSale:
		v, ok := row.Get(constants.SaleDateColumn)
		if !ok || ingest.IsEmptyCell(v) {
			return current
		}
		if t, isDate := v.(time.Time); isDate {
			return t.Format(constants.DisplayDateLayout)
		}
		// Free text is passed through untouched: the source format is
		// unconstrained, so reformatting would guess.
		return ingest.CellString(v)

	default:
		return current
	}
}
