package invoice

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/suporteverde/invoice-batch/internal/entity"
	"github.com/suporteverde/invoice-batch/internal/ingest"
)

// Renderer lays one invoice out as a workbook and serializes it.
type Renderer interface {
	Render(inv *entity.InvoiceData) ([]byte, error)
}

// Service runs the full upload-to-invoices transformation.
type Service struct {
	renderer Renderer
	logger   *slog.Logger
	now      func() time.Time
}

func NewService(r Renderer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{renderer: r, logger: logger, now: time.Now}
}

// ProcessUpload loads the uploaded file and transforms every row into an
// invoice-data record with its rendered document attached, in input
// order. The batch is all-or-nothing: a load or render failure aborts
// the whole request with no partial output. Per-cell problems (bad
// currency text, bad dates) never surface here; they default inside the
// transformation.
func (s *Service) ProcessUpload(ctx context.Context, file io.Reader, filename string, policy entity.DatePolicy) ([]entity.InvoiceData, error) {
	start := time.Now()
	batchID := uuid.NewString()

	table, err := ingest.Load(file, filename)
	if err != nil {
		s.logger.Error("process.load.failed", "batch_id", batchID, "filename", filename, "error", err)
		return nil, err
	}

	now := s.now()
	out := make([]entity.InvoiceData, 0, len(table.Rows))
	for i, row := range table.Rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		inv := BuildInvoice(table.Headers, row, i, policy, now)

		blob, err := s.renderer.Render(&inv)
		if err != nil {
			s.logger.Error("process.render.failed", "batch_id", batchID, "row", i, "error", err)
			return nil, fmt.Errorf("render row %d: %w", i, err)
		}
		inv.DocumentBlob = base64.StdEncoding.EncodeToString(blob)

		out = append(out, inv)
	}

	s.logger.Info("process.batch.ok",
		"batch_id", batchID,
		"filename", filename,
		"date_mode", policy.Mode.String(),
		"rows", len(out),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}
