package invoice

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suporteverde/invoice-batch/internal/entity"
)

// stubRenderer records calls and can be told to fail on a given row.
type stubRenderer struct {
	calls  int
	failAt int // -1 never fails
}

func (r *stubRenderer) Render(inv *entity.InvoiceData) ([]byte, error) {
	defer func() { r.calls++ }()
	if r.failAt >= 0 && r.calls == r.failAt {
		return nil, errors.New("boom")
	}
	return []byte(fmt.Sprintf("doc-%d", inv.SequenceIndex)), nil
}

func TestProcessUploadKeepsRowOrder(t *testing.T) {
	csvData := "Nome,V. Devido\n" +
		"Zilda,\"R$ 30,00\"\n" +
		"Ana,\"R$ 10,00\"\n" +
		"Bruno,\"R$ 20,00\"\n"

	svc := NewService(&stubRenderer{failAt: -1}, nil)
	svc.now = func() time.Time { return testNow }

	records, err := svc.ProcessUpload(context.Background(), strings.NewReader(csvData), "notas.csv", entity.DatePolicy{Mode: entity.DateCurrent})
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Output order matches input order regardless of content; the row
	// index drives the invoice number, so reordering would be visible.
	assert.Equal(t, "NF-1000 - Zilda", records[0].DisplayName)
	assert.Equal(t, "NF-1001 - Ana", records[1].DisplayName)
	assert.Equal(t, "NF-1002 - Bruno", records[2].DisplayName)

	for i, rec := range records {
		assert.Equal(t, i, rec.SequenceIndex)
		assert.Equal(t, base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("doc-%d", i))), rec.DocumentBlob)
	}
}

func TestProcessUploadKeepsCSVDateTextVerbatim(t *testing.T) {
	// Brazilian DD/MM/YYYY text in a CSV must survive the full pipeline
	// untouched: the due date verbatim, and the sale date verbatim under
	// the sale-date policy. Reinterpreting it would swap day and month.
	csvData := "Nome,Venc,Data\n" +
		"Ana,05/03/2024,05/03/2024\n"

	svc := NewService(&stubRenderer{failAt: -1}, nil)
	svc.now = func() time.Time { return testNow }

	records, err := svc.ProcessUpload(context.Background(), strings.NewReader(csvData), "notas.csv", entity.DatePolicy{Mode: entity.DateSale})
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "05/03/2024", records[0].DueDate)
	assert.Equal(t, "05/03/2024", records[0].EmissionDate)
}

func TestProcessUploadAbortsBatchOnRenderFailure(t *testing.T) {
	csvData := "Nome\nAna\nBruno\n"

	svc := NewService(&stubRenderer{failAt: 1}, nil)

	records, err := svc.ProcessUpload(context.Background(), strings.NewReader(csvData), "notas.csv", entity.DatePolicy{Mode: entity.DateCurrent})
	assert.Error(t, err)
	assert.Nil(t, records)
}

func TestProcessUploadRejectsUnknownExtension(t *testing.T) {
	svc := NewService(&stubRenderer{failAt: -1}, nil)

	_, err := svc.ProcessUpload(context.Background(), strings.NewReader("x"), "notas.pdf", entity.DatePolicy{Mode: entity.DateCurrent})
	assert.Error(t, err)
}
