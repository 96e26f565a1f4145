package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"teknofix/services"
	"teknofix/templates"
)

// HandleQuoteCreate returns a handler that renders an empty quote editor:
// one blank line item, today's date, last known rates.
func HandleQuoteCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := &services.Quote{
			QuoteDate:     time.Now().Format("2006-01-02"),
			PrintCurrency: services.CurrencyTRY,
			Items:         []services.LineItem{services.NewLineItem(nil)},
		}

		// Pre-fill rates from the most recent quote so a fresh editor does
		// not start at zero.
		store := services.NewQuoteStore(app)
		if quotes, err := store.List(); err == nil && len(quotes) > 0 {
			q.DollarRate = quotes[0].DollarRate
			q.EuroRate = quotes[0].EuroRate
		}

		data := buildQuoteEditorData(q, services.CurrencyTRY)
		component := templates.QuoteEditorPage(data, NavFor(e.Request, "quotes"))
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleQuoteEdit returns a handler that loads a stored quote into the
// editor. The stored rates are restored as-is: a reloaded quote never
// silently picks up today's rates.
func HandleQuoteEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		store := services.NewQuoteStore(app)
		q, err := store.Get(id)
		if err != nil {
			log.Printf("quote_edit: %v", err)
			return ErrorToast(e, http.StatusNotFound, "Teklif bulunamadı")
		}

		data := buildQuoteEditorData(q, services.CurrencyTRY)
		component := templates.QuoteEditorPage(data, NavFor(e.Request, "quotes"))
		return component.Render(e.Request.Context(), e.Response)
	}
}
