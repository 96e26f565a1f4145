package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"teknofix/services"
	"teknofix/templates"
)

// HandleQuoteRecompute returns the handler behind every editor change: it
// parses the whole form, recomputes all derived values and re-renders the
// editor fragment. Arithmetic is synchronous; there is nothing to await.
func HandleQuoteRecompute(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Form okunamadı")
		}

		q, displayCur := parseQuoteForm(e)
		data := buildQuoteEditorData(q, displayCur)
		return templates.QuoteEditorForm(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleQuoteAddLine returns a handler that appends a blank line item to the
// submitted form state and re-renders.
func HandleQuoteAddLine(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Form okunamadı")
		}

		q, displayCur := parseQuoteForm(e)
		q.Items = append(q.Items, services.NewLineItem(q.Items))

		data := buildQuoteEditorData(q, displayCur)
		return templates.QuoteEditorForm(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleQuoteRemoveLine returns a handler that removes one line item from
// the submitted form state. Removing the last remaining line is refused.
func HandleQuoteRemoveLine(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Form okunamadı")
		}

		q, displayCur := parseQuoteForm(e)

		id, err := strconv.Atoi(e.Request.URL.Query().Get("id"))
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Geçersiz satır")
		}

		items, err := services.RemoveLineItem(q.Items, id)
		if err != nil {
			if errors.Is(err, services.ErrLastLineItem) {
				SetToast(e, "warning", "Son satır silinemez")
			} else {
				SetToast(e, "error", "Satır silinemedi")
			}
		}
		q.Items = items

		data := buildQuoteEditorData(q, displayCur)
		return templates.QuoteEditorForm(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleQuoteRatesRefresh returns a handler that fetches fresh rates from
// the feed and re-renders the editor with them. A fetch failure is advisory:
// the submitted rates stay active and only a toast is shown.
func HandleQuoteRatesRefresh(app *pocketbase.PocketBase, provider services.RateProvider) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Form okunamadı")
		}

		q, displayCur := parseQuoteForm(e)

		rates, err := provider.FetchRates(context.Background())
		if err != nil {
			log.Printf("quote_rates: fetch failed: %v", err)
			SetToast(e, "warning", "Kurlar alınamadı, mevcut kurlar korundu")
		} else {
			q.DollarRate = rates.USD
			q.EuroRate = rates.EUR
			SetToast(e, "success", "Kurlar güncellendi")
		}

		data := buildQuoteEditorData(q, displayCur)
		return templates.QuoteEditorForm(data).Render(e.Request.Context(), e.Response)
	}
}
