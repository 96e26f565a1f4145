package services

import "fmt"

// QuoteExportRow is one printed line: position number plus the public money
// fields re-expressed in the print currency. Cost and profit figures are
// internal-only and never leave the editor screen.
type QuoteExportRow struct {
	No          int
	Description string
	Qty         string
	UnitPrice   string
	LineTotal   string
}

// QuoteExportData is everything the print view, the PDF and the Excel export
// render. All three consume the same projection so their figures cannot
// diverge.
type QuoteExportData struct {
	QuoteNumber string
	CompanyName string
	City        string
	Phone       string
	QuoteDate   string

	Currency   Currency
	Rows       []QuoteExportRow
	Subtotal   string
	KDVPercent string
	KDV        string
	GrandTotal string
}

// BuildQuoteExportData recomputes the quote from its raw inputs and stored
// rates, then projects the printable fields into the quote's print currency.
// The print currency is selected independently of the on-screen display
// currency and uses the same fixed rates (no re-fetch).
func BuildQuoteExportData(q *Quote) QuoteExportData {
	rates := q.Rates()
	totals := CalcQuoteTotals(q.Items, rates)
	cur := q.PrintCurrency

	rows := make([]QuoteExportRow, 0, len(q.Items))
	for i, item := range q.Items {
		lt := CalcLineTotals(item, rates)
		rows = append(rows, QuoteExportRow{
			No:          i + 1,
			Description: item.Description,
			Qty:         fmt.Sprintf("%d", item.Qty),
			UnitPrice:   FormatMoney(ConvertFromTRY(lt.QuoteUnitPrice, cur, rates), cur),
			LineTotal:   FormatMoney(ConvertFromTRY(lt.QuoteLineTotal, cur, rates), cur),
		})
	}

	return QuoteExportData{
		QuoteNumber: q.QuoteNumber,
		CompanyName: q.CompanyName,
		City:        q.City,
		Phone:       q.Phone,
		QuoteDate:   q.QuoteDate,
		Currency:    cur,
		Rows:        rows,
		Subtotal:    FormatMoney(ConvertFromTRY(totals.QuoteSubtotal, cur, rates), cur),
		KDVPercent:  fmt.Sprintf("%%%g", totals.EffectiveKDVPercent),
		KDV:         FormatMoney(ConvertFromTRY(totals.QuoteKDV, cur, rates), cur),
		GrandTotal:  FormatMoney(ConvertFromTRY(totals.GrandQuote, cur, rates), cur),
	}
}
