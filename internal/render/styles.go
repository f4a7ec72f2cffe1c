package render

import "github.com/xuri/excelize/v2"

// Palette constants for the invoice template.
const (
	brandColor  = "2C5282"
	titleColor  = "FFFFFF"
	currencyFmt = `"R$" #,##0.00`
)

// Styles is the immutable style bundle for the invoice template. Style
// IDs in excelize are file-scoped, so the bundle carries definitions and
// each rendered workbook registers its own copies.
type Styles struct {
	Title     *excelize.Style
	Label     *excelize.Style
	Section   *excelize.Style
	TableHead *excelize.Style
	Cell      *excelize.Style
	Money     *excelize.Style
	Total     *excelize.Style
}

// DefaultStyles returns the fixed template styling: blue banner, bold
// labels, thin-bordered payment table and currency-formatted amounts.
func DefaultStyles() Styles {
	thin := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
	centered := &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	cfmt := currencyFmt

	return Styles{
		Title: &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 14, Color: titleColor},
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{brandColor}},
			Alignment: centered,
		},
		Label: &excelize.Style{
			Font: &excelize.Font{Bold: true},
		},
		Section: &excelize.Style{
			Font:   &excelize.Font{Bold: true, Color: brandColor},
			Border: []excelize.Border{{Type: "bottom", Style: 5, Color: brandColor}},
		},
		TableHead: &excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Border:    thin,
			Alignment: centered,
		},
		Cell: &excelize.Style{
			Border:    thin,
			Alignment: &excelize.Alignment{Horizontal: "center"},
		},
		Money: &excelize.Style{
			Border:       thin,
			Alignment:    &excelize.Alignment{Horizontal: "center"},
			CustomNumFmt: &cfmt,
		},
		Total: &excelize.Style{
			Font:         &excelize.Font{Bold: true, Size: 12},
			CustomNumFmt: &cfmt,
		},
	}
}
