// Package services provides the quotation pricing engine, currency handling,
// exchange rate fetching and document export for the shop back-office.
package services

import "errors"

// DefaultKDVPercent is the KDV rate assumed when a quote has no line items.
// With zero lines every subtotal is zero, so the fallback never shows up in
// the totals; it only keeps the effective rate well-defined.
const DefaultKDVPercent = 20.0

// ErrLastLineItem is returned when removing the only remaining line item.
// A quote always keeps at least one line.
var ErrLastLineItem = errors.New("a quote must keep at least one line item")

// LineItem is one quoted material or service entry as the operator typed it.
// UnitPrice is in the entry Currency; everything derived from it is TL.
type LineItem struct {
	ID            int      `json:"id"`
	Description   string   `json:"description"`
	Qty           int      `json:"qty"`
	UnitPrice     float64  `json:"unit_price"`
	Currency      Currency `json:"currency"`
	ProfitPercent float64  `json:"profit_percent"`
	KDVPercent    float64  `json:"kdv_percent"`
}

// LineTotals holds the four derived TL values for a single line item.
// Each is a pure function of the line's raw inputs and the quote's rates.
type LineTotals struct {
	UnitCost       float64 // unit price normalized to TL
	LineCost       float64 // UnitCost * Qty
	QuoteUnitPrice float64 // UnitCost plus margin (margin on cost, not on price)
	QuoteLineTotal float64 // QuoteUnitPrice * Qty
}

// QuoteTotals holds the aggregate TL figures for a whole quote.
//
// ProfitSubtotal and ProfitKDV are defined by subtraction, never by summing a
// per-line profit: that keeps grandQuote == grandCost + grandProfit an exact
// algebraic identity instead of a rounding-prone near-equality.
type QuoteTotals struct {
	CostSubtotal        float64
	QuoteSubtotal       float64
	ProfitSubtotal      float64 // QuoteSubtotal - CostSubtotal
	EffectiveKDVPercent float64 // arithmetic mean of the line KDV percents
	CostKDV             float64
	QuoteKDV            float64
	ProfitKDV           float64 // QuoteKDV - CostKDV
	GrandCost           float64
	GrandProfit         float64
	GrandQuote          float64
}

// CalcLineTotals derives the four TL values for one line item.
func CalcLineTotals(item LineItem, rates Rates) LineTotals {
	unitCost := item.UnitPrice * rates.Rate(item.Currency)
	quoteUnitPrice := unitCost + unitCost*item.ProfitPercent/100

	qty := float64(item.Qty)
	return LineTotals{
		UnitCost:       unitCost,
		LineCost:       unitCost * qty,
		QuoteUnitPrice: quoteUnitPrice,
		QuoteLineTotal: quoteUnitPrice * qty,
	}
}

// CalcQuoteTotals aggregates all line items into the quote totals.
//
// KDV is never applied per line. The per-line KDV percents collapse into one
// effective rate (their plain average, not weighted by subtotal) which is then
// applied to the cost and quote subtotals. Historical quotes were priced this
// way, so the averaging stays even for mixed-rate line sets.
func CalcQuoteTotals(items []LineItem, rates Rates) QuoteTotals {
	var totals QuoteTotals

	var kdvSum float64
	for _, item := range items {
		lt := CalcLineTotals(item, rates)
		totals.CostSubtotal += lt.LineCost
		totals.QuoteSubtotal += lt.QuoteLineTotal
		kdvSum += item.KDVPercent
	}

	if len(items) > 0 {
		totals.EffectiveKDVPercent = kdvSum / float64(len(items))
	} else {
		totals.EffectiveKDVPercent = DefaultKDVPercent
	}

	totals.ProfitSubtotal = totals.QuoteSubtotal - totals.CostSubtotal
	totals.CostKDV = totals.CostSubtotal * totals.EffectiveKDVPercent / 100
	totals.QuoteKDV = totals.QuoteSubtotal * totals.EffectiveKDVPercent / 100
	totals.ProfitKDV = totals.QuoteKDV - totals.CostKDV

	totals.GrandCost = totals.CostSubtotal + totals.CostKDV
	totals.GrandProfit = totals.ProfitSubtotal + totals.ProfitKDV
	totals.GrandQuote = totals.QuoteSubtotal + totals.QuoteKDV

	return totals
}

// NewLineItem returns a blank line item with the next free in-memory ID.
// IDs are stable within a quote for form keying and removal; they carry no
// meaning across quotes.
func NewLineItem(items []LineItem) LineItem {
	maxID := 0
	for _, item := range items {
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	return LineItem{
		ID:         maxID + 1,
		Qty:        1,
		Currency:   CurrencyTRY,
		KDVPercent: DefaultKDVPercent,
	}
}

// RemoveLineItem removes the line with the given ID, refusing to remove the
// last remaining line. The returned slice keeps the original order; printed
// line numbers follow slice position, so they stay contiguous from 1.
func RemoveLineItem(items []LineItem, id int) ([]LineItem, error) {
	if len(items) <= 1 {
		return items, ErrLastLineItem
	}

	result := make([]LineItem, 0, len(items)-1)
	found := false
	for _, item := range items {
		if item.ID == id {
			found = true
			continue
		}
		result = append(result, item)
	}
	if !found {
		return items, nil
	}
	return result, nil
}
