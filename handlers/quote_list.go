package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"teknofix/services"
	"teknofix/templates"
)

// HandleQuoteList returns a handler that renders the quote list page.
func HandleQuoteList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		store := services.NewQuoteStore(app)
		quotes, err := store.List()
		if err != nil {
			log.Printf("quote_list: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Teklifler yüklenemedi")
		}

		rows := make([]templates.QuoteListRow, 0, len(quotes))
		for _, q := range quotes {
			rows = append(rows, templates.QuoteListRow{
				ID:          q.ID,
				QuoteNumber: q.QuoteNumber,
				CompanyName: q.CompanyName,
				QuoteDate:   q.QuoteDate,
				GrandTotal:  services.FormatMoney(q.GrandTotal, services.CurrencyTRY),
			})
		}

		component := templates.QuoteListPage(templates.QuoteListData{Quotes: rows}, NavFor(e.Request, "quotes"))
		return component.Render(e.Request.Context(), e.Response)
	}
}
