package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"teknofix/services"
	"teknofix/templates"
)

// parseQuoteForm reads the whole posted editor form back into a Quote plus
// the screen display currency. The editor round-trips all line items on every
// interaction, so the server never holds editing state between requests.
//
// Line items are terminated by a missing items[i].id field: an empty
// description is a valid line and must survive the round trip.
func parseQuoteForm(e *core.RequestEvent) (*services.Quote, services.Currency) {
	q := &services.Quote{
		ID:          strings.TrimSpace(e.Request.FormValue("quote_id")),
		CompanyName: strings.TrimSpace(e.Request.FormValue("company_name")),
		City:        strings.TrimSpace(e.Request.FormValue("city")),
		Phone:       strings.TrimSpace(e.Request.FormValue("phone")),
		QuoteDate:   strings.TrimSpace(e.Request.FormValue("quote_date")),
	}
	if q.QuoteDate == "" {
		q.QuoteDate = time.Now().Format("2006-01-02")
	}

	q.DollarRate, _ = strconv.ParseFloat(e.Request.FormValue("dollar_rate"), 64)
	q.EuroRate, _ = strconv.ParseFloat(e.Request.FormValue("euro_rate"), 64)
	q.PrintCurrency = services.ParseCurrency(e.Request.FormValue("print_currency"))

	for i := 0; ; i++ {
		prefix := fmt.Sprintf("items[%d].", i)
		idVal := e.Request.FormValue(prefix + "id")
		if idVal == "" {
			break
		}

		id, _ := strconv.Atoi(idVal)
		qty, _ := strconv.Atoi(e.Request.FormValue(prefix + "qty"))
		if qty < 1 {
			qty = 1
		}
		unitPrice, _ := strconv.ParseFloat(e.Request.FormValue(prefix+"unit_price"), 64)
		if unitPrice < 0 {
			unitPrice = 0
		}
		profit, _ := strconv.ParseFloat(e.Request.FormValue(prefix+"profit_percent"), 64)
		kdv, _ := strconv.ParseFloat(e.Request.FormValue(prefix+"kdv_percent"), 64)

		q.Items = append(q.Items, services.LineItem{
			ID:            id,
			Description:   strings.TrimSpace(e.Request.FormValue(prefix + "description")),
			Qty:           qty,
			UnitPrice:     unitPrice,
			Currency:      services.ParseCurrency(e.Request.FormValue(prefix + "currency")),
			ProfitPercent: profit,
			KDVPercent:    kdv,
		})
	}

	if len(q.Items) == 0 {
		q.Items = append(q.Items, services.NewLineItem(nil))
	}

	return q, services.ParseCurrency(e.Request.FormValue("display_currency"))
}

// buildQuoteEditorData recomputes all derived values and projects them into
// the display currency for the editor form. Changing the display currency is
// a pure re-rendering: the TL figures underneath are identical.
func buildQuoteEditorData(q *services.Quote, displayCur services.Currency) templates.QuoteEditorData {
	rates := q.Rates()
	totals := services.CalcQuoteTotals(q.Items, rates)

	show := func(v float64) string {
		return services.FormatMoney(services.ConvertFromTRY(v, displayCur, rates), displayCur)
	}

	lines := make([]templates.QuoteLineRow, 0, len(q.Items))
	for i, item := range q.Items {
		lt := services.CalcLineTotals(item, rates)
		lines = append(lines, templates.QuoteLineRow{
			ID:             item.ID,
			No:             i + 1,
			Description:    item.Description,
			Qty:            item.Qty,
			UnitPrice:      item.UnitPrice,
			Currency:       string(item.Currency),
			ProfitPercent:  item.ProfitPercent,
			KDVPercent:     item.KDVPercent,
			UnitCost:       show(lt.UnitCost),
			LineCost:       show(lt.LineCost),
			QuoteUnitPrice: show(lt.QuoteUnitPrice),
			QuoteLineTotal: show(lt.QuoteLineTotal),
		})
	}

	currencies := make([]string, 0, len(services.CurrencyOptions))
	for _, c := range services.CurrencyOptions {
		currencies = append(currencies, string(c))
	}

	return templates.QuoteEditorData{
		QuoteID:     q.ID,
		QuoteNumber: q.QuoteNumber,
		CompanyName: q.CompanyName,
		City:        q.City,
		Phone:       q.Phone,
		QuoteDate:   q.QuoteDate,
		DollarRate:  q.DollarRate,
		EuroRate:    q.EuroRate,

		DisplayCurrency: string(displayCur),
		PrintCurrency:   string(q.PrintCurrency),

		Lines: lines,

		CostSubtotal:   show(totals.CostSubtotal),
		QuoteSubtotal:  show(totals.QuoteSubtotal),
		ProfitSubtotal: show(totals.ProfitSubtotal),
		EffectiveKDV:   fmt.Sprintf("%%%g", totals.EffectiveKDVPercent),
		CostKDV:        show(totals.CostKDV),
		QuoteKDV:       show(totals.QuoteKDV),
		ProfitKDV:      show(totals.ProfitKDV),
		GrandCost:      show(totals.GrandCost),
		GrandProfit:    show(totals.GrandProfit),
		GrandQuote:     show(totals.GrandQuote),

		CurrencyOptions: currencies,
		KDVOptions:      services.KDVOptions,
		ProfitOptions:   services.ProfitOptions,
		Errors:          make(map[string]string),
	}
}
