package constants

// Column lookup tables for the billing spreadsheets we receive. Export
// systems disagree on header naming, so every logical field carries an
// ordered list of exact headers plus a set of normalized fallbacks.

// CustomerNameColumns is tried in order; the first present, non-empty
// column wins. "Resp. Fin" outranks "Nome" and "Cliente" on purpose:
// when both exist the financial responsible is the billed party.
var CustomerNameColumns = []string{
	"Resp. Fin", "Resp Fin", "Resp. Fin.", "Nome", "Cliente", "Razão Social",
}

// CustomerNameFallbacks holds normalized header keys (lowercase, no dots
// or spaces) accepted when none of the exact candidates match.
var CustomerNameFallbacks = map[string]struct{}{
	"respfin":     {},
	"nome":        {},
	"cliente":     {},
	"razaosocial": {},
}

// TaxIDColumns: CPF/CNPJ before plain CPF.
var TaxIDColumns = []string{"CPF/CNPJ", "CPF"}

// Remaining single-column lookups.
var (
	OriginColumns           = []string{"Origem"}
	TitleColumns            = []string{"Título"}
	SpeciesColumns          = []string{"Espécie"}
	AccountPlanColumns      = []string{"P. Contas"}
	ResponsibleTaxIDColumns = []string{"CPF Resp"}
	DueDateColumns          = []string{"Venc"}
	SaleDateColumn          = "Data"

	AmountDueColumns      = []string{"V. Devido"}
	AmountReceivedColumns = []string{"V. Receb"}
	AmountDiscountColumns = []string{"V. Desc"}
)

// Placeholders substituted when a logical field cannot be resolved.
const (
	PlaceholderCustomer    = "Consumidor"
	PlaceholderDash        = "-"
	PlaceholderTitle       = "Serviço"
	PlaceholderSpecies     = "NF-e"
	PlaceholderAccountPlan = "Fidelizado"
)
