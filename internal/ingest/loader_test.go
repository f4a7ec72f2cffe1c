package ingest

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/suporteverde/invoice-batch/internal/common"
)

func TestLoadCSVUTF8(t *testing.T) {
	data := " Nome ,V. Devido,Data\n" +
		"João,\"R$ 1.234,56\",2024-01-02\n" +
		"Maria,100,\n"

	table, err := Load(strings.NewReader(data), "notas.csv")
	require.NoError(t, err)

	// Headers are whitespace-trimmed and keep their original order.
	assert.Equal(t, []string{"Nome", "V. Devido", "Data"}, table.Headers)
	require.Len(t, table.Rows, 2)

	assert.Equal(t, "João", table.Rows[0]["Nome"])
	assert.Equal(t, "R$ 1.234,56", table.Rows[0]["V. Devido"])
	assert.Equal(t, "2024-01-02", table.Rows[0]["Data"])

	assert.Equal(t, float64(100), table.Rows[1]["V. Devido"])
	_, ok := table.Rows[1]["Data"]
	assert.False(t, ok, "empty cell should be absent")
}

func TestLoadCSVKeepsDateTextVerbatim(t *testing.T) {
	// CSV cells carry no types: Brazilian DD/MM/YYYY text must come out
	// exactly as written, never reinterpreted as a date.
	data := "Nome,Venc,Data\n" +
		"Ana,05/03/2024,2024-03-05\n"

	table, err := Load(strings.NewReader(data), "notas.csv")
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)

	assert.Equal(t, "05/03/2024", table.Rows[0]["Venc"])
	assert.Equal(t, "2024-03-05", table.Rows[0]["Data"])
}

func TestLoadCSVLatin1Fallback(t *testing.T) {
	// Latin-1 semicolon-delimited content, as produced by older exports.
	enc := charmap.ISO8859_1.NewEncoder()
	raw, err := enc.Bytes([]byte("Razão Social;Título\nConservação Ltda;Manutenção\n"))
	require.NoError(t, err)

	table, err := Load(bytes.NewReader(raw), "notas.csv")
	require.NoError(t, err)

	assert.Equal(t, []string{"Razão Social", "Título"}, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Conservação Ltda", table.Rows[0]["Razão Social"])
	assert.Equal(t, "Manutenção", table.Rows[0]["Título"])
}

func TestLoadXLSXFirstSheet(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{" Nome ", "V. Devido"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"Maria", 250.5}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	table, err := Load(bytes.NewReader(buf.Bytes()), "notas.xlsx")
	require.NoError(t, err)

	assert.Equal(t, []string{"Nome", "V. Devido"}, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Maria", table.Rows[0]["Nome"])
	assert.Equal(t, 250.5, table.Rows[0]["V. Devido"])
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	_, err := Load(strings.NewReader("a,b\n1,2\n"), "notas.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidInput))
}

func TestLoadRejectsEmptyCSV(t *testing.T) {
	_, err := Load(strings.NewReader(""), "notas.csv")
	assert.Error(t, err)
}

func TestCSVCell(t *testing.T) {
	assert.Nil(t, csvCell("  "))
	assert.Equal(t, 10.5, csvCell("10.5"))
	assert.Equal(t, "abc", csvCell("abc"))
	assert.Equal(t, "2024-01-02", csvCell("2024-01-02"))
	assert.Equal(t, "05/03/2024", csvCell("05/03/2024"))
}

func TestXLSXCell(t *testing.T) {
	assert.Nil(t, xlsxCell("  "))
	assert.Equal(t, 10.5, xlsxCell("10.5"))
	assert.Equal(t, "abc", xlsxCell("abc"))
	assert.IsType(t, time.Time{}, xlsxCell("2024-01-02"))
	assert.IsType(t, time.Time{}, xlsxCell("01-02-06"))
}

func TestIsEmptyCell(t *testing.T) {
	assert.True(t, IsEmptyCell(nil))
	assert.True(t, IsEmptyCell(""))
	assert.True(t, IsEmptyCell("   "))
	assert.True(t, IsEmptyCell(time.Time{}))
	assert.False(t, IsEmptyCell("x"))
	assert.False(t, IsEmptyCell(0.0))
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "", CellString(nil))
	assert.Equal(t, "abc", CellString("abc"))
	assert.Equal(t, "100", CellString(float64(100)))
	assert.Equal(t, "10.5", CellString(10.5))
	assert.Equal(t, "2024-01-02", CellString(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)))
}
