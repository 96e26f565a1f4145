package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"teknofix/services"
	"teknofix/templates"
)

// HandleDeviceNew returns a handler that renders the blank intake form.
func HandleDeviceNew(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.DeviceFormData{
			ReceivedDate:  time.Now().Format("2006-01-02"),
			StatusOptions: services.DeviceStatusOptions,
			StatusLabels:  services.DeviceStatusLabels,
		}
		component := templates.DeviceFormPage(data, NavFor(e.Request, "devices"))
		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return component.Render(e.Request.Context(), e.Response)
	}
}

// parseDeviceForm reads the submitted intake fields into form data, keeping
// the raw values so a failed validation re-renders what was typed.
func parseDeviceForm(e *core.RequestEvent) templates.DeviceFormData {
	return templates.DeviceFormData{
		CustomerName:  strings.TrimSpace(e.Request.FormValue("customer_name")),
		Phone:         strings.TrimSpace(e.Request.FormValue("customer_phone")),
		Brand:         strings.TrimSpace(e.Request.FormValue("brand")),
		Model:         strings.TrimSpace(e.Request.FormValue("model")),
		SerialNumber:  strings.TrimSpace(e.Request.FormValue("serial_number")),
		Problem:       strings.TrimSpace(e.Request.FormValue("problem")),
		Status:        strings.TrimSpace(e.Request.FormValue("status")),
		ReceivedDate:  strings.TrimSpace(e.Request.FormValue("received_date")),
		Notes:         strings.TrimSpace(e.Request.FormValue("notes")),
		StatusOptions: services.DeviceStatusOptions,
		StatusLabels:  services.DeviceStatusLabels,
	}
}

// validateDeviceForm checks the intake fields that must be present.
func validateDeviceForm(data templates.DeviceFormData) map[string]string {
	errs := make(map[string]string)
	if data.CustomerName == "" {
		errs["customer_name"] = "Müşteri adı zorunludur"
	}
	if data.Brand == "" {
		errs["brand"] = "Marka zorunludur"
	}
	if data.Problem == "" {
		errs["problem"] = "Arıza açıklaması zorunludur"
	}
	if !services.ValidatePhone(data.Phone) {
		errs["customer_phone"] = "Geçersiz telefon numarası"
	}
	return errs
}

// HandleDeviceCreate returns a handler that registers a received device.
// New devices always start in the "received" state.
func HandleDeviceCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Form okunamadı")
		}

		data := parseDeviceForm(e)
		if data.ReceivedDate == "" {
			data.ReceivedDate = time.Now().Format("2006-01-02")
		}

		if errs := validateDeviceForm(data); len(errs) > 0 {
			data.Errors = errs
			SetToast(e, "warning", "Lütfen hataları düzeltin")
			component := templates.DeviceFormPage(data, NavFor(e.Request, "devices"))
			return component.Render(e.Request.Context(), e.Response)
		}

		col, err := app.FindCollectionByNameOrId("devices")
		if err != nil {
			log.Printf("device_create: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Cihaz kaydedilemedi")
		}

		record := core.NewRecord(col)
		record.Set("customer_name", data.CustomerName)
		record.Set("customer_phone", data.Phone)
		record.Set("brand", data.Brand)
		record.Set("model", data.Model)
		record.Set("serial_number", data.SerialNumber)
		record.Set("problem", data.Problem)
		record.Set("status", "received")
		record.Set("received_date", data.ReceivedDate)
		record.Set("notes", data.Notes)

		if err := app.Save(record); err != nil {
			log.Printf("device_create: could not save: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Cihaz kaydedilemedi")
		}

		SetToast(e, "success", "Cihaz kaydı oluşturuldu")
		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/panel/cihazlar")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/panel/cihazlar")
	}
}
