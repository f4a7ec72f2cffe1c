package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/suporteverde/invoice-batch/constants"
	"github.com/suporteverde/invoice-batch/internal/common"
)

// Cell layouts that excelize produces for date-styled workbook cells. A
// workbook cell whose text matches one of these is surfaced as time.Time
// so the date resolver can reformat it. This list applies to the XLSX
// path only: CSV carries no cell types, so date-looking CSV text stays
// text.
var dateCellLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01-02-06",
	"1/2/06 15:04",
	"01/02/2006",
}

// Load reads an uploaded tabular file into a Table. The extension of
// filename selects the decoder: .csv goes through the delimited-text path,
// anything else is treated as a workbook (first sheet only).
func Load(r io.Reader, filename string) (*Table, error) {
	ext := constants.NormalizeExt(filepath.Ext(filename))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return nil, common.InvalidInputErrorf("unsupported file extension %q", ext)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	if ext == "csv" {
		return loadCSV(data)
	}
	return loadXLSX(data)
}

// loadCSV parses UTF-8 comma-delimited text, falling back to ISO8859-1
// with a ';' delimiter when the first attempt fails. Brazilian exports
// are frequently Latin-1 semicolon files.
func loadCSV(data []byte) (*Table, error) {
	if utf8.Valid(data) {
		if t, err := parseCSV(bytes.NewReader(data), ','); err == nil {
			return t, nil
		}
	}

	dec := transform.NewReader(bytes.NewReader(data), charmap.ISO8859_1.NewDecoder())
	t, err := parseCSV(dec, ';')
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return t, nil
}

func parseCSV(r io.Reader, comma rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	return tableFromRecords(records, csvCell), nil
}

// loadXLSX reads the first sheet of a workbook.
func loadXLSX(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty sheet %q", sheet)
	}
	return tableFromRecords(rows, xlsxCell), nil
}

// tableFromRecords builds a Table from raw string records, using cell to
// give each non-empty value its dynamic type. The first record is the
// header row.
func tableFromRecords(records [][]string, cell func(string) any) *Table {
	headers := trimHeaders(records[0])
	table := &Table{Headers: headers}
	for _, rec := range records[1:] {
		row := make(RawRow, len(headers))
		for i, h := range headers {
			if h == "" || i >= len(rec) {
				continue
			}
			if v := cell(rec[i]); v != nil {
				row[h] = v
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

// trimHeaders strips surrounding whitespace from every header, dropping
// none: positions must stay aligned with the data columns.
func trimHeaders(hs []string) []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = strings.TrimSpace(h)
	}
	return out
}

// csvCell types a delimited-text cell: empty cells become nil and numeric
// text becomes float64. Everything else, date-looking text included, stays
// a string; reinterpreting "05/03/2024" would swap day and month.
func csvCell(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// xlsxCell additionally re-types date-styled cells, which excelize hands
// back as formatted text even when the workbook stores a datetime.
func xlsxCell(s string) any {
	v := csvCell(s)
	txt, ok := v.(string)
	if !ok {
		return v
	}
	for _, layout := range dateCellLayouts {
		if t, err := time.Parse(layout, txt); err == nil {
			return t
		}
	}
	return v
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
