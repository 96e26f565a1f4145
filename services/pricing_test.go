package services

import (
	"math"
	"testing"
)

func floatClose(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalcLineTotals(t *testing.T) {
	rates := Rates{USD: 35, EUR: 38}

	tests := []struct {
		name            string
		item            LineItem
		expectUnitCost  float64
		expectLineCost  float64
		expectQuoteUnit float64
		expectQuoteLine float64
	}{
		{
			name:            "tl line with margin",
			item:            LineItem{Qty: 2, UnitPrice: 100, Currency: CurrencyTRY, ProfitPercent: 20},
			expectUnitCost:  100,
			expectLineCost:  200,
			expectQuoteUnit: 120,
			expectQuoteLine: 240,
		},
		{
			name:            "usd line converts at quote rate",
			item:            LineItem{Qty: 1, UnitPrice: 10, Currency: CurrencyUSD},
			expectUnitCost:  350,
			expectLineCost:  350,
			expectQuoteUnit: 350,
			expectQuoteLine: 350,
		},
		{
			name:            "eur line converts at quote rate",
			item:            LineItem{Qty: 3, UnitPrice: 5, Currency: CurrencyEUR, ProfitPercent: 10},
			expectUnitCost:  190,
			expectLineCost:  570,
			expectQuoteUnit: 209,
			expectQuoteLine: 627,
		},
		{
			name:            "zero margin leaves price at cost",
			item:            LineItem{Qty: 4, UnitPrice: 250, Currency: CurrencyTRY},
			expectUnitCost:  250,
			expectLineCost:  1000,
			expectQuoteUnit: 250,
			expectQuoteLine: 1000,
		},
		{
			name:            "zero qty zeroes the line totals",
			item:            LineItem{Qty: 0, UnitPrice: 100, Currency: CurrencyTRY, ProfitPercent: 50},
			expectUnitCost:  100,
			expectLineCost:  0,
			expectQuoteUnit: 150,
			expectQuoteLine: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcLineTotals(tt.item, rates)
			if !floatClose(got.UnitCost, tt.expectUnitCost) {
				t.Errorf("UnitCost = %v, want %v", got.UnitCost, tt.expectUnitCost)
			}
			if !floatClose(got.LineCost, tt.expectLineCost) {
				t.Errorf("LineCost = %v, want %v", got.LineCost, tt.expectLineCost)
			}
			if !floatClose(got.QuoteUnitPrice, tt.expectQuoteUnit) {
				t.Errorf("QuoteUnitPrice = %v, want %v", got.QuoteUnitPrice, tt.expectQuoteUnit)
			}
			if !floatClose(got.QuoteLineTotal, tt.expectQuoteLine) {
				t.Errorf("QuoteLineTotal = %v, want %v", got.QuoteLineTotal, tt.expectQuoteLine)
			}
		})
	}
}

func TestCalcQuoteTotalsMeanKDV(t *testing.T) {
	rates := Rates{USD: 35, EUR: 38}

	items := []LineItem{
		{ID: 1, Qty: 1, UnitPrice: 100, Currency: CurrencyTRY, KDVPercent: 10},
		{ID: 2, Qty: 1, UnitPrice: 100, Currency: CurrencyTRY, KDVPercent: 30},
	}

	got := CalcQuoteTotals(items, rates)
	if !floatClose(got.EffectiveKDVPercent, 20) {
		t.Errorf("EffectiveKDVPercent = %v, want 20", got.EffectiveKDVPercent)
	}
	// the mean is a plain average regardless of line size
	items[0].Qty = 100
	got = CalcQuoteTotals(items, rates)
	if !floatClose(got.EffectiveKDVPercent, 20) {
		t.Errorf("EffectiveKDVPercent with uneven lines = %v, want 20", got.EffectiveKDVPercent)
	}
}

func TestCalcQuoteTotalsEmpty(t *testing.T) {
	got := CalcQuoteTotals(nil, Rates{USD: 35, EUR: 38})

	if got.CostSubtotal != 0 || got.QuoteSubtotal != 0 || got.GrandQuote != 0 {
		t.Errorf("empty quote produced non-zero totals: %+v", got)
	}
	if !floatClose(got.EffectiveKDVPercent, DefaultKDVPercent) {
		t.Errorf("EffectiveKDVPercent = %v, want %v", got.EffectiveKDVPercent, DefaultKDVPercent)
	}
}

func TestCalcQuoteTotalsReconciliation(t *testing.T) {
	rates := Rates{USD: 41.5, EUR: 44.8}

	items := []LineItem{
		{ID: 1, Qty: 3, UnitPrice: 1234.56, Currency: CurrencyTRY, ProfitPercent: 17.5, KDVPercent: 20},
		{ID: 2, Qty: 1, UnitPrice: 99.99, Currency: CurrencyUSD, ProfitPercent: 33, KDVPercent: 10},
		{ID: 3, Qty: 7, UnitPrice: 42.42, Currency: CurrencyEUR, ProfitPercent: 5, KDVPercent: 1},
		{ID: 4, Qty: 2, UnitPrice: 0, Currency: CurrencyTRY, ProfitPercent: 50, KDVPercent: 18},
	}

	got := CalcQuoteTotals(items, rates)

	if !floatClose(got.ProfitSubtotal, got.QuoteSubtotal-got.CostSubtotal) {
		t.Errorf("ProfitSubtotal = %v, want %v", got.ProfitSubtotal, got.QuoteSubtotal-got.CostSubtotal)
	}
	if !floatClose(got.ProfitKDV, got.QuoteKDV-got.CostKDV) {
		t.Errorf("ProfitKDV = %v, want %v", got.ProfitKDV, got.QuoteKDV-got.CostKDV)
	}
	if !floatClose(got.GrandQuote, got.GrandCost+got.GrandProfit) {
		t.Errorf("GrandQuote = %v, want GrandCost+GrandProfit = %v",
			got.GrandQuote, got.GrandCost+got.GrandProfit)
	}
}

func TestCalcQuoteTotalsSingleLine(t *testing.T) {
	items := []LineItem{
		{ID: 1, Qty: 2, UnitPrice: 100, Currency: CurrencyTRY, ProfitPercent: 20, KDVPercent: 20},
	}

	got := CalcQuoteTotals(items, Rates{USD: 35, EUR: 38})

	if !floatClose(got.CostSubtotal, 200) {
		t.Errorf("CostSubtotal = %v, want 200", got.CostSubtotal)
	}
	if !floatClose(got.QuoteSubtotal, 240) {
		t.Errorf("QuoteSubtotal = %v, want 240", got.QuoteSubtotal)
	}
	if !floatClose(got.ProfitSubtotal, 40) {
		t.Errorf("ProfitSubtotal = %v, want 40", got.ProfitSubtotal)
	}
	if !floatClose(got.QuoteKDV, 48) {
		t.Errorf("QuoteKDV = %v, want 48", got.QuoteKDV)
	}
	if !floatClose(got.GrandQuote, 288) {
		t.Errorf("GrandQuote = %v, want 288", got.GrandQuote)
	}
}

func TestNewLineItem(t *testing.T) {
	first := NewLineItem(nil)
	if first.ID != 1 {
		t.Errorf("first line ID = %d, want 1", first.ID)
	}
	if first.Qty != 1 {
		t.Errorf("first line Qty = %d, want 1", first.Qty)
	}
	if first.Currency != CurrencyTRY {
		t.Errorf("first line Currency = %q, want %q", first.Currency, CurrencyTRY)
	}
	if first.KDVPercent != DefaultKDVPercent {
		t.Errorf("first line KDVPercent = %v, want %v", first.KDVPercent, DefaultKDVPercent)
	}

	items := []LineItem{{ID: 3}, {ID: 7}, {ID: 2}}
	next := NewLineItem(items)
	if next.ID != 8 {
		t.Errorf("next line ID = %d, want 8", next.ID)
	}
}

func TestRemoveLineItem(t *testing.T) {
	items := []LineItem{{ID: 1}, {ID: 2}, {ID: 3}}

	got, err := RemoveLineItem(items, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("remaining IDs wrong: %+v", got)
	}

	// removing an unknown ID is a no-op
	got, err = RemoveLineItem(items, 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("no-op removal changed length: %d", len(got))
	}
}

func TestRemoveLineItemRefusesLast(t *testing.T) {
	items := []LineItem{{ID: 1}}

	got, err := RemoveLineItem(items, 1)
	if err != ErrLastLineItem {
		t.Fatalf("err = %v, want ErrLastLineItem", err)
	}
	if len(got) != 1 {
		t.Errorf("last line was removed: %+v", got)
	}
}
