package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"

	"github.com/suporteverde/invoice-batch/internal/common"
	"github.com/suporteverde/invoice-batch/internal/entity"
	"github.com/suporteverde/invoice-batch/internal/invoice"
)

// SaveResult reports the outcome of a batch save.
type SaveResult struct {
	Saved      int
	Duplicates int
}

type InvoiceRepository interface {
	// List returns all stored invoices, most recent first.
	List(ctx context.Context) ([]*entity.StoredInvoice, error)
	// SaveBatch inserts the given records, silently skipping any whose
	// content fingerprint already exists.
	SaveBatch(ctx context.Context, records []entity.SaveInvoice) (SaveResult, error)
	// SetRegistered flips the registered flag of one stored invoice.
	SetRegistered(ctx context.Context, id int64, registered bool) error
}

type invoiceRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewInvoiceRepository(db *sql.DB, logger *slog.Logger) InvoiceRepository {
	return &invoiceRepository{
		db:     db,
		logger: logger,
	}
}

func (r *invoiceRepository) List(ctx context.Context) ([]*entity.StoredInvoice, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, empresa, data, valor, status, is_cadastrado, arquivo_base64, detalhes_json
		FROM notas
		ORDER BY id DESC`)
	if err != nil {
		r.logger.Error("failed to list invoices", "error", err)
		return nil, common.WrapError(err, "list invoices")
	}
	defer rows.Close()

	var out []*entity.StoredInvoice
	for rows.Next() {
		var (
			rec         entity.StoredInvoice
			registered  int
			detailsJSON sql.NullString
		)
		if err := rows.Scan(&rec.ID, &rec.Company, &rec.Date, &rec.Amount,
			&rec.Status, &registered, &rec.FileBase64, &detailsJSON); err != nil {
			return nil, common.WrapError(err, "scan invoice")
		}
		rec.Registered = registered != 0
		rec.Details = map[string]any{}
		if detailsJSON.Valid && detailsJSON.String != "" {
			if err := json.Unmarshal([]byte(detailsJSON.String), &rec.Details); err != nil {
				r.logger.Warn("stored invoice has malformed details json", "id", rec.ID, "error", err)
				rec.Details = map[string]any{}
			}
		}
		out = append(out, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, common.WrapError(err, "iterate invoices")
	}
	return out, nil
}

func (r *invoiceRepository) SaveBatch(ctx context.Context, records []entity.SaveInvoice) (SaveResult, error) {
	var res SaveResult

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return res, common.WrapError(err, "begin save batch")
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO notas (empresa, data, valor, status, is_cadastrado, arquivo_base64, detalhes_json, hash_registro)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(hash_registro) DO NOTHING`)
	if err != nil {
		return res, common.WrapError(err, "prepare insert")
	}
	defer stmt.Close()

	for _, rec := range records {
		// Fingerprint over the identity fields exactly as submitted.
		hash := invoice.Fingerprint(rec.Company, rec.Date, rec.Amount)

		details, err := json.Marshal(rec.Details)
		if err != nil {
			return res, common.InternalError("marshal invoice details", err)
		}

		registered := 0
		if rec.Registered {
			registered = 1
		}

		result, err := stmt.ExecContext(ctx, rec.Company, rec.Date, rec.Amount,
			rec.Status, registered, rec.FileBase64, string(details), hash)
		if err != nil {
			r.logger.Error("failed to insert invoice", "empresa", rec.Company, "error", err)
			return res, common.WrapError(err, "insert invoice")
		}

		n, err := result.RowsAffected()
		if err != nil {
			return res, common.WrapError(err, "rows affected")
		}
		if n == 0 {
			res.Duplicates++
		} else {
			res.Saved++
		}
	}

	if err := tx.Commit(); err != nil {
		return res, common.WrapError(err, "commit save batch")
	}

	r.logger.Info("save.batch.ok", "saved", res.Saved, "duplicates", res.Duplicates)
	return res, nil
}

func (r *invoiceRepository) SetRegistered(ctx context.Context, id int64, registered bool) error {
	val := 0
	if registered {
		val = 1
	}
	result, err := r.db.ExecContext(ctx, `UPDATE notas SET is_cadastrado = ? WHERE id = ?`, val, id)
	if err != nil {
		r.logger.Error("failed to update invoice", "id", id, "error", err)
		return common.WrapError(err, "update invoice")
	}
	n, err := result.RowsAffected()
	if err != nil {
		return common.WrapError(err, "rows affected")
	}
	if n == 0 {
		return common.NewAppError("NOT_FOUND", "invoice not found", common.ErrNotFound)
	}
	return nil
}
