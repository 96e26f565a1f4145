package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"teknofix/services"
	"teknofix/templates"
)

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// HandleQuotePrint returns a handler that renders the printable quote page in
// the quote's stored print currency.
func HandleQuotePrint(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.String(http.StatusBadRequest, "Teklif kimliği eksik")
		}

		q, err := services.NewQuoteStore(app).Get(id)
		if err != nil {
			log.Printf("quote_print: %v", err)
			return e.String(http.StatusNotFound, "Teklif bulunamadı")
		}

		data := services.BuildQuoteExportData(q)

		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return templates.QuotePrintPage(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleQuotePDF returns a handler that generates and downloads the quote as
// a PDF document.
func HandleQuotePDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.String(http.StatusBadRequest, "Teklif kimliği eksik")
		}

		q, err := services.NewQuoteStore(app).Get(id)
		if err != nil {
			log.Printf("quote_pdf: %v", err)
			return e.String(http.StatusNotFound, "Teklif bulunamadı")
		}

		data := services.BuildQuoteExportData(q)

		pdfBytes, err := services.GenerateQuotePDF(data)
		if err != nil {
			log.Printf("quote_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "PDF oluşturulamadı")
		}

		filename := fmt.Sprintf("Teklif_%s.pdf", sanitizeFilename(data.QuoteNumber))

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleQuoteExcel returns a handler that generates and downloads the quote
// as an Excel workbook.
func HandleQuoteExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.String(http.StatusBadRequest, "Teklif kimliği eksik")
		}

		q, err := services.NewQuoteStore(app).Get(id)
		if err != nil {
			log.Printf("quote_excel: %v", err)
			return e.String(http.StatusNotFound, "Teklif bulunamadı")
		}

		data := services.BuildQuoteExportData(q)

		xlsxBytes, err := services.GenerateQuoteExcel(data)
		if err != nil {
			log.Printf("quote_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Excel dosyası oluşturulamadı")
		}

		filename := fmt.Sprintf("Teklif_%s.xlsx", sanitizeFilename(data.QuoteNumber))

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
