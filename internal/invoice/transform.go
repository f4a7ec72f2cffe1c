package invoice

import (
	"fmt"
	"time"

	"github.com/suporteverde/invoice-batch/constants"
	"github.com/suporteverde/invoice-batch/internal/entity"
	"github.com/suporteverde/invoice-batch/internal/ingest"
)

// maxCustomerNameLen bounds the customer portion of the display name.
const maxCustomerNameLen = 30

// BuildInvoice assembles the invoice-data record for the row at index i.
// It is pure: the processing instant comes in as now and the rendered
// document is attached separately by the caller.
func BuildInvoice(headers []string, row ingest.RawRow, i int, policy entity.DatePolicy, now time.Time) entity.InvoiceData {
	emission := ResolveEmissionDate(policy, row, now)

	customer := ResolveColumn(headers, row,
		constants.CustomerNameColumns, constants.CustomerNameFallbacks, constants.PlaceholderCustomer)

	taxID := ResolveColumn(headers, row, constants.TaxIDColumns, nil, constants.PlaceholderDash)

	due := ParseAmount(firstCell(row, constants.AmountDueColumns))
	received := ParseAmount(firstCell(row, constants.AmountReceivedColumns))
	discount := ParseAmount(firstCell(row, constants.AmountDiscountColumns))

	inv := entity.InvoiceData{
		SequenceIndex:    i,
		CustomerName:     customer,
		Origin:           ResolveColumn(headers, row, constants.OriginColumns, nil, constants.PlaceholderDash),
		TaxID:            taxID,
		Title:            ResolveColumn(headers, row, constants.TitleColumns, nil, constants.PlaceholderTitle),
		Species:          ResolveColumn(headers, row, constants.SpeciesColumns, nil, constants.PlaceholderSpecies),
		AccountPlan:      ResolveColumn(headers, row, constants.AccountPlanColumns, nil, constants.PlaceholderAccountPlan),
		ResponsibleTaxID: ResolveColumn(headers, row, constants.ResponsibleTaxIDColumns, nil, taxID),
		AmountDue:        due,
		AmountReceived:   received,
		AmountDiscount:   discount,
		AmountDueText:    FormatAmount(due),
		AmountRecvText:   FormatAmount(received),
		AmountDiscText:   FormatAmount(discount),
		EmissionDate:     emission,
		DueDate:          ResolveColumn(headers, row, constants.DueDateColumns, nil, now.Format(constants.DisplayDateLayout)),
	}
	inv.DisplayName = fmt.Sprintf("NF-%d - %s", inv.InvoiceNumber(), truncateRunes(customer, maxCustomerNameLen))
	return inv
}

// firstCell returns the first present cell among candidates, or nil.
func firstCell(row ingest.RawRow, candidates []string) any {
	for _, c := range candidates {
		if v, ok := row.Get(c); ok && !ingest.IsEmptyCell(v) {
			return v
		}
	}
	return nil
}

// truncateRunes shortens s to at most n runes, never splitting one.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
