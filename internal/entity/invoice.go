package entity

// InvoiceData is the per-row result of processing an uploaded billing
// spreadsheet. JSON field names follow the wire contract consumed by the
// frontend, so most of them stay in Portuguese.
type InvoiceData struct {
	SequenceIndex    int    `json:"temp_id"`
	DisplayName      string `json:"nome_arquivo"`
	CustomerName     string `json:"respFin"`
	Origin           string `json:"origem"`
	TaxID            string `json:"cpf"`
	Title            string `json:"titulo"`
	Species          string `json:"especie"`
	AmountDueText    string `json:"vDevido"`
	AmountRecvText   string `json:"vReceb"`
	AmountDiscText   string `json:"vDesc"`
	AccountPlan      string `json:"pContas"`
	ResponsibleTaxID string `json:"cpfResp"`
	EmissionDate     string `json:"data"`
	DueDate          string `json:"venc"`
	DocumentBlob     string `json:"arquivo"`

	// Canonical amounts kept alongside the display strings. The renderer
	// formats these itself, so they are not part of the JSON payload.
	AmountDue      float64 `json:"-"`
	AmountReceived float64 `json:"-"`
	AmountDiscount float64 `json:"-"`
}

// InvoiceNumber derives the displayed invoice number from the row position.
func (d *InvoiceData) InvoiceNumber() int {
	return 1000 + d.SequenceIndex
}

// StoredInvoice is a persisted invoice record as returned by the store.
type StoredInvoice struct {
	ID         int64          `json:"id"`
	Company    string         `json:"empresa"`
	Date       string         `json:"data"`
	Amount     string         `json:"valor"`
	Status     string         `json:"status"`
	Registered bool           `json:"isCadastrado"`
	FileBase64 string         `json:"arquivoBase64"`
	Details    map[string]any `json:"detalhesCompletos"`
}

// SaveInvoice is one element of the save request payload. The fingerprint
// used for duplicate rejection is computed over Company, Date and Amount
// exactly as submitted.
type SaveInvoice struct {
	Company    string         `json:"empresa"`
	Date       string         `json:"data"`
	Amount     string         `json:"valor"`
	Status     string         `json:"status"`
	Registered bool           `json:"isCadastrado"`
	FileBase64 string         `json:"arquivoBase64"`
	Details    map[string]any `json:"detalhesCompletos"`
}
