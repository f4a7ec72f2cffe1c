package entity

import "fmt"

// DateMode selects how the emission date of each processed row is derived.
type DateMode int

const (
	// DateCurrent stamps every row with the processing date.
	DateCurrent DateMode = iota
	// DateSale takes the date from the row's "Data" column when present.
	DateSale
	// DateCustom uses a caller-supplied date for every row.
	DateCustom
)

func (m DateMode) String() string {
	switch m {
	case DateCurrent:
		return "atual"
	case DateSale:
		return "venda"
	case DateCustom:
		return "escolher"
	}
	return fmt.Sprintf("DateMode(%d)", int(m))
}

// DatePolicy is the request-level rule for resolving emission dates.
// CustomDate is only meaningful under DateCustom and carries the
// caller-supplied date in YYYY-MM-DD form.
type DatePolicy struct {
	Mode       DateMode
	CustomDate string
}

// ParseDateMode maps the wire values accepted by the processing endpoint.
// Unknown values fall back to the current-date mode, matching the
// treat-anything-else-as-default behavior of the form field.
func ParseDateMode(s string) DateMode {
	switch s {
	case "venda":
		return DateSale
	case "escolher":
		return DateCustom
	default:
		return DateCurrent
	}
}
