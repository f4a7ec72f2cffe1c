package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/suporteverde/invoice-batch/internal/common"
	"github.com/suporteverde/invoice-batch/internal/entity"
)

// handleListInvoices returns every stored invoice, most recent first.
func (s *Server) handleListInvoices(w http.ResponseWriter, r *http.Request) {
	records, err := s.repo.List(r.Context())
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, "erro ao listar notas", err)
		return
	}
	if records == nil {
		records = []*entity.StoredInvoice{}
	}
	writeJSON(w, http.StatusOK, records)
}

// handleSaveInvoices persists a batch of emitted invoices, skipping
// records whose fingerprint already exists.
func (s *Server) handleSaveInvoices(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxBytes))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, "corpo da requisição inválido", err)
		return
	}

	if err := validateSavePayload(s.saveSchema, body); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "payload inválido", err)
		return
	}

	var records []entity.SaveInvoice
	if err := json.Unmarshal(body, &records); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "payload inválido", err)
		return
	}

	res, err := s.repo.SaveBatch(r.Context(), records)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, "erro ao salvar notas", err)
		return
	}

	msg := fmt.Sprintf("%d notas salvas.", res.Saved)
	if res.Duplicates > 0 {
		msg += fmt.Sprintf(" (%d duplicatas já existiam)", res.Duplicates)
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":    msg,
		"duplicates": res.Duplicates,
	})
}

// handleUpdateInvoice updates the registered flag of a stored invoice.
func (s *Server) handleUpdateInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, "id inválido", err)
		return
	}

	var body struct {
		Registered bool `json:"isCadastrado"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "corpo da requisição inválido", err)
		return
	}

	if err := s.repo.SetRegistered(r.Context(), id, body.Registered); err != nil {
		s.writeError(w, r, common.HTTPStatus(err), "erro ao atualizar nota", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Status atualizado!"})
}

// handleProcessUpload ingests an uploaded tabular file and returns the
// processed invoice records, in input order, with rendered documents
// attached. The batch either fully succeeds or fails with a single
// error; there is no partial output.
func (s *Server) handleProcessUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxBytes)
	if err := r.ParseMultipartForm(s.cfg.Upload.MaxBytes); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "arquivo muito grande ou formulário inválido", err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, "Nenhum arquivo enviado", err)
		return
	}
	defer file.Close()

	policy := entity.DatePolicy{
		Mode:       entity.ParseDateMode(r.FormValue("modoData")),
		CustomDate: r.FormValue("dataCustom"),
	}

	result, err := s.processor.ProcessUpload(r.Context(), file, header.Filename, policy)
	if err != nil {
		s.writeError(w, r, common.HTTPStatus(err), "erro ao processar notas", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
