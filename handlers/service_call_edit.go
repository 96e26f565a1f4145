package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"teknofix/templates"
)

// HandleServiceCallEdit returns a handler that renders the edit form for a
// service call, echoing the stored signature back into the pad.
func HandleServiceCallEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		record, err := app.FindRecordById("service_calls", id)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Servis çağrısı bulunamadı")
		}

		data := templates.ServiceCallFormData{
			CallID:       record.Id,
			CustomerName: record.GetString("customer_name"),
			Address:      record.GetString("address"),
			Phone:        record.GetString("phone"),
			CallDate:     record.GetString("call_date"),
			Technician:   record.GetString("technician"),
			Problem:      record.GetString("problem"),
			WorkDone:     record.GetString("work_done"),
			Status:       record.GetString("status"),
			Signature:    record.GetString("signature"),
		}

		component := templates.ServiceCallFormPage(data, NavFor(e.Request, "service"))
		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleServiceCallUpdate returns a handler that saves edits to an existing
// service call.
func HandleServiceCallUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Form okunamadı")
		}

		record, err := app.FindRecordById("service_calls", id)
		if err != nil {
			log.Printf("service_call_update: could not find call %s: %v", id, err)
			return ErrorToast(e, http.StatusNotFound, "Servis çağrısı bulunamadı")
		}

		data := parseServiceCallForm(e)
		data.CallID = record.Id
		if data.Status == "" {
			data.Status = record.GetString("status")
		}

		if errs := validateServiceCallForm(data); len(errs) > 0 {
			data.Errors = errs
			SetToast(e, "warning", "Lütfen hataları düzeltin")
			component := templates.ServiceCallFormPage(data, NavFor(e.Request, "service"))
			return component.Render(e.Request.Context(), e.Response)
		}

		fillServiceCallRecord(record, data)

		if err := app.Save(record); err != nil {
			log.Printf("service_call_update: could not save call %s: %v", id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Servis çağrısı güncellenemedi")
		}

		SetToast(e, "success", "Servis çağrısı güncellendi")
		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/panel/servis")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/panel/servis")
	}
}
