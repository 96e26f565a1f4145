package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"

	"teknofix/services"
	"teknofix/templates"
)

// HandleServiceCallNew returns a handler that renders the blank call form.
func HandleServiceCallNew(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.ServiceCallFormData{
			CallDate: time.Now().Format("2006-01-02"),
			Status:   "open",
		}
		component := templates.ServiceCallFormPage(data, NavFor(e.Request, "service"))
		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return component.Render(e.Request.Context(), e.Response)
	}
}

// parseServiceCallForm reads the submitted call fields, raw signature JSON
// included, so a failed save re-renders everything the technician entered.
func parseServiceCallForm(e *core.RequestEvent) templates.ServiceCallFormData {
	return templates.ServiceCallFormData{
		CustomerName: strings.TrimSpace(e.Request.FormValue("customer_name")),
		Address:      strings.TrimSpace(e.Request.FormValue("address")),
		Phone:        strings.TrimSpace(e.Request.FormValue("phone")),
		CallDate:     strings.TrimSpace(e.Request.FormValue("call_date")),
		Technician:   strings.TrimSpace(e.Request.FormValue("technician")),
		Problem:      strings.TrimSpace(e.Request.FormValue("problem")),
		WorkDone:     strings.TrimSpace(e.Request.FormValue("work_done")),
		Status:       strings.TrimSpace(e.Request.FormValue("status")),
		Signature:    strings.TrimSpace(e.Request.FormValue("signature")),
	}
}

// validateServiceCallForm checks the call fields. Completing a call requires
// a captured customer signature; the signature itself must parse as stroke
// vectors when present.
func validateServiceCallForm(data templates.ServiceCallFormData) map[string]string {
	errs := make(map[string]string)
	if data.CustomerName == "" {
		errs["customer_name"] = "Müşteri adı zorunludur"
	}
	if data.Problem == "" {
		errs["problem"] = "Arıza açıklaması zorunludur"
	}
	if !services.ValidatePhone(data.Phone) {
		errs["phone"] = "Geçersiz telefon numarası"
	}

	if _, err := services.ParseSignature(data.Signature); err != nil {
		if errors.Is(err, services.ErrEmptySignature) {
			if data.Status == "completed" {
				errs["signature"] = "Çağrıyı tamamlamak için müşteri imzası gereklidir"
			}
		} else {
			errs["signature"] = "İmza okunamadı, lütfen tekrar imzalayın"
		}
	}

	return errs
}

func fillServiceCallRecord(record *core.Record, data templates.ServiceCallFormData) {
	record.Set("customer_name", data.CustomerName)
	record.Set("address", data.Address)
	record.Set("phone", data.Phone)
	record.Set("call_date", data.CallDate)
	record.Set("technician", data.Technician)
	record.Set("problem", data.Problem)
	record.Set("work_done", data.WorkDone)
	record.Set("status", data.Status)
	if services.HasSignature(data.Signature) {
		record.Set("signature", types.JSONRaw(data.Signature))
	} else {
		record.Set("signature", nil)
	}
}

// HandleServiceCallCreate returns a handler that records a new service call.
func HandleServiceCallCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Form okunamadı")
		}

		data := parseServiceCallForm(e)
		if data.CallDate == "" {
			data.CallDate = time.Now().Format("2006-01-02")
		}
		if data.Status == "" {
			data.Status = "open"
		}

		if errs := validateServiceCallForm(data); len(errs) > 0 {
			data.Errors = errs
			SetToast(e, "warning", "Lütfen hataları düzeltin")
			component := templates.ServiceCallFormPage(data, NavFor(e.Request, "service"))
			return component.Render(e.Request.Context(), e.Response)
		}

		col, err := app.FindCollectionByNameOrId("service_calls")
		if err != nil {
			log.Printf("service_call_create: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Servis çağrısı kaydedilemedi")
		}

		record := core.NewRecord(col)
		fillServiceCallRecord(record, data)

		if err := app.Save(record); err != nil {
			log.Printf("service_call_create: could not save: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Servis çağrısı kaydedilemedi")
		}

		SetToast(e, "success", "Servis çağrısı oluşturuldu")
		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/panel/servis")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/panel/servis")
	}
}
