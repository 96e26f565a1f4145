package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"teknofix/services"
	"teknofix/testhelpers"
)

func TestHandleQuoteCreate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteCreate(app)

	req := httptest.NewRequest(http.MethodGet, "/panel/teklifler/yeni", nil)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	// one blank line with ID 1, no rates yet, margin quick-entry list wired
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		`name="items[0].id" value="1"`,
		`name="dollar_rate" value="0"`,
		`list="profit-options"`,
		`<datalist id="profit-options">`,
		`<option value="25">`,
	)
}

func TestHandleQuoteCreatePrefillsLastRates(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestQuote(t, app, "TKF-QT-26-0001", "Önceki Firma")

	handler := HandleQuoteCreate(app)

	req := httptest.NewRequest(http.MethodGet, "/panel/teklifler/yeni", nil)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	// rates carried over from the most recent quote
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		`name="dollar_rate" value="41.5"`,
		`name="euro_rate" value="44.8"`,
	)
}

func TestHandleQuoteEditRestoresStoredRates(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	store := services.NewQuoteStore(app)
	q := &services.Quote{
		CompanyName: "Demir Elektronik",
		QuoteDate:   "2026-01-15",
		DollarRate:  38.2,
		EuroRate:    41.9,
		Items: []services.LineItem{
			{ID: 1, Description: "Anakart", Qty: 1, UnitPrice: 3500, Currency: services.CurrencyTRY, ProfitPercent: 25, KDVPercent: 20},
		},
		PrintCurrency: services.CurrencyTRY,
	}
	q.ApplyTotals(services.CalcQuoteTotals(q.Items, q.Rates()))
	if err := store.Save(q); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	handler := HandleQuoteEdit(app)

	req := httptest.NewRequest(http.MethodGet, "/panel/teklifler/"+q.ID, nil)
	req.SetPathValue("id", q.ID)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Demir Elektronik",
		"Anakart",
		`name="dollar_rate" value="38.2"`,
		`name="euro_rate" value="41.9"`,
		q.QuoteNumber,
	)
}

func TestHandleQuoteEditNotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteEdit(app)

	req := httptest.NewRequest(http.MethodGet, "/panel/teklifler/yok", nil)
	req.SetPathValue("id", "yok")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleQuoteList(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestQuote(t, app, "TKF-QT-26-0001", "Yılmaz Ofis Sistemleri")
	testhelpers.CreateTestQuote(t, app, "TKF-QT-26-0002", "Demir Elektronik")

	handler := HandleQuoteList(app)

	req := httptest.NewRequest(http.MethodGet, "/panel/teklifler", nil)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"TKF-QT-26-0001",
		"TKF-QT-26-0002",
		"Yılmaz Ofis Sistemleri",
		"Demir Elektronik",
		"3.600,00 ₺",
	)
}
