package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"teknofix/services"
	"teknofix/templates"
)

// validateQuote performs the local checks that block a save before any
// storage call.
func validateQuote(q *services.Quote) map[string]string {
	errs := make(map[string]string)
	if q.CompanyName == "" {
		errs["company_name"] = "Firma adı zorunludur"
	}
	if !services.ValidatePhone(q.Phone) {
		errs["phone"] = "Geçersiz telefon numarası"
	}
	return errs
}

// renderQuoteFormWithErrors re-renders the submitted editor state so a
// failed save never loses the operator's edits.
func renderQuoteFormWithErrors(e *core.RequestEvent, q *services.Quote, displayCur services.Currency, errs map[string]string) error {
	data := buildQuoteEditorData(q, displayCur)
	data.Errors = errs
	return templates.QuoteEditorForm(data).Render(e.Request.Context(), e.Response)
}

// HandleQuoteSave returns a handler that inserts a new quote. The document is
// recomputed from the submitted raw inputs, its aggregates stored alongside
// them, and the record saved as a whole.
func HandleQuoteSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Form okunamadı")
		}

		q, displayCur := parseQuoteForm(e)
		q.ID = "" // insert, even if a stray id was posted

		if errs := validateQuote(q); len(errs) > 0 {
			SetToast(e, "warning", "Lütfen hataları düzeltin")
			return renderQuoteFormWithErrors(e, q, displayCur, errs)
		}

		q.ApplyTotals(services.CalcQuoteTotals(q.Items, q.Rates()))

		store := services.NewQuoteStore(app)
		if err := store.Save(q); err != nil {
			log.Printf("quote_save: %v", err)
			SetToast(e, "error", "Teklif kaydedilemedi, lütfen tekrar deneyin")
			return renderQuoteFormWithErrors(e, q, displayCur, map[string]string{})
		}

		SetToast(e, "success", "Teklif kaydedildi: "+q.QuoteNumber)
		redirectURL := "/panel/teklifler/" + q.ID
		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", redirectURL)
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, redirectURL)
	}
}

// HandleQuoteUpdate returns a handler that overwrites a stored quote by its
// record id.
func HandleQuoteUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Form okunamadı")
		}

		q, displayCur := parseQuoteForm(e)
		q.ID = e.Request.PathValue("id")

		if errs := validateQuote(q); len(errs) > 0 {
			SetToast(e, "warning", "Lütfen hataları düzeltin")
			return renderQuoteFormWithErrors(e, q, displayCur, errs)
		}

		q.ApplyTotals(services.CalcQuoteTotals(q.Items, q.Rates()))

		store := services.NewQuoteStore(app)
		if err := store.Update(q); err != nil {
			log.Printf("quote_update: %v", err)
			SetToast(e, "error", "Teklif güncellenemedi, lütfen tekrar deneyin")
			return renderQuoteFormWithErrors(e, q, displayCur, map[string]string{})
		}

		SetToast(e, "success", "Teklif güncellendi")
		return renderQuoteFormWithErrors(e, q, displayCur, map[string]string{})
	}
}

// HandleQuoteDelete returns a handler that removes a stored quote.
func HandleQuoteDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		if _, err := app.FindRecordById("quotes", id); err != nil {
			return ErrorToast(e, http.StatusNotFound, "Teklif bulunamadı")
		}

		store := services.NewQuoteStore(app)
		if err := store.Delete(id); err != nil {
			log.Printf("Error deleting quote %s: %v", id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Teklif silinemedi")
		}

		SetToast(e, "success", "Teklif silindi")
		if e.Request.Header.Get("HX-Request") == "true" {
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/panel/teklifler")
	}
}
