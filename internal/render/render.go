// Package render lays out one invoice-data record as a styled XLSX
// workbook using a single fixed template.
package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/suporteverde/invoice-batch/internal/entity"
)

const sheetName = "Nota Fiscal"

// Renderer produces invoice workbooks from an immutable style bundle.
// It holds no per-render state, so one instance serves all batches.
type Renderer struct {
	styles Styles
}

func NewRenderer(styles Styles) *Renderer {
	return &Renderer{styles: styles}
}

// Render lays out the fixed template for one invoice and returns the
// serialized workbook. Coordinates, widths and styling never vary per
// row; only the inserted text does. Numeric cells carry the R$ display
// format and are written from the canonical floats, not the
// preformatted strings.
func (r *Renderer) Render(inv *entity.InvoiceData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	ids, err := r.registerStyles(f)
	if err != nil {
		return nil, err
	}

	// Title banner.
	if err := f.MergeCell(sheetName, "A1", "D2"); err != nil {
		return nil, fmt.Errorf("merge banner: %w", err)
	}
	setCell(f, "A1", "MD SISTEMAS - NOTA FISCAL DE SERVIÇO")
	setStyle(f, "A1", "D2", ids.title)

	// Invoice number and emission date.
	setCell(f, "A4", "Número da Nota:")
	setCell(f, "B4", inv.InvoiceNumber())
	setCell(f, "C4", "Data Emissão:")
	setCell(f, "D4", inv.EmissionDate)
	setStyle(f, "A4", "A4", ids.label)
	setStyle(f, "C4", "C4", ids.label)

	// Service taker block.
	if err := f.MergeCell(sheetName, "A6", "D6"); err != nil {
		return nil, fmt.Errorf("merge section: %w", err)
	}
	setCell(f, "A6", "DADOS DO TOMADOR DE SERVIÇO")
	setStyle(f, "A6", "A6", ids.section)

	setCell(f, "A8", "Razão Social / Nome:")
	setCell(f, "B8", inv.CustomerName)
	setCell(f, "A9", "CPF / CNPJ:")
	setCell(f, "B9", inv.TaxID)
	setCell(f, "A10", "Origem:")
	setCell(f, "B10", inv.Origin)

	// Payment details block.
	if err := f.MergeCell(sheetName, "A12", "D12"); err != nil {
		return nil, fmt.Errorf("merge section: %w", err)
	}
	setCell(f, "A12", "DETALHES DO PAGAMENTO")
	setStyle(f, "A12", "A12", ids.section)

	headers := []string{"Descrição (Espécie)", "Vencimento", "Desconto", "Valor Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 14)
		setCell(f, cell, h)
		setStyle(f, cell, cell, ids.tableHead)
	}

	setCell(f, "A15", inv.Species+" - "+inv.Title)
	setCell(f, "B15", inv.DueDate)
	setCell(f, "C15", inv.AmountDiscount)
	setCell(f, "D15", inv.AmountDue)
	setStyle(f, "A15", "A15", ids.cell)
	setStyle(f, "B15", "B15", ids.cell)
	setStyle(f, "C15", "C15", ids.money)
	setStyle(f, "D15", "D15", ids.money)

	// Net total.
	setCell(f, "C17", "VALOR LÍQUIDO:")
	setStyle(f, "C17", "C17", ids.label)
	setCell(f, "D17", inv.AmountDue-inv.AmountDiscount)
	setStyle(f, "D17", "D17", ids.total)

	for col, width := range map[string]float64{"A": 30, "B": 25, "C": 20, "D": 20} {
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return nil, fmt.Errorf("set width %s: %w", col, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

type styleIDs struct {
	title, label, section, tableHead, cell, money, total int
}

func (r *Renderer) registerStyles(f *excelize.File) (styleIDs, error) {
	var ids styleIDs
	var err error
	register := func(dst *int, s *excelize.Style) {
		if err != nil {
			return
		}
		*dst, err = f.NewStyle(s)
	}
	register(&ids.title, r.styles.Title)
	register(&ids.label, r.styles.Label)
	register(&ids.section, r.styles.Section)
	register(&ids.tableHead, r.styles.TableHead)
	register(&ids.cell, r.styles.Cell)
	register(&ids.money, r.styles.Money)
	register(&ids.total, r.styles.Total)
	if err != nil {
		return styleIDs{}, fmt.Errorf("register styles: %w", err)
	}
	return ids, nil
}

func setCell(f *excelize.File, cell string, v any) {
	_ = f.SetCellValue(sheetName, cell, v)
}

func setStyle(f *excelize.File, from, to string, id int) {
	_ = f.SetCellStyle(sheetName, from, to, id)
}
