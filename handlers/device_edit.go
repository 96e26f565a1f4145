package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"teknofix/services"
	"teknofix/templates"
)

// isValidDeviceTransition returns true when moving a device from
// currentStatus to newStatus is allowed. The workflow runs forward only:
//
//	received → diagnosing → repairing → ready → delivered
//
// Any state may be cancelled. Going back to "received" is not permitted.
func isValidDeviceTransition(currentStatus, newStatus string) bool {
	if newStatus == currentStatus {
		return true
	}
	if newStatus == "cancelled" {
		return true
	}
	switch currentStatus {
	case "received":
		return newStatus == "diagnosing"
	case "diagnosing":
		return newStatus == "repairing"
	case "repairing":
		return newStatus == "ready"
	case "ready":
		return newStatus == "delivered"
	default:
		return false
	}
}

// HandleDeviceEdit returns a handler that renders the edit form for a device.
func HandleDeviceEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		record, err := app.FindRecordById("devices", id)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Cihaz bulunamadı")
		}

		data := templates.DeviceFormData{
			DeviceID:      record.Id,
			CustomerName:  record.GetString("customer_name"),
			Phone:         record.GetString("customer_phone"),
			Brand:         record.GetString("brand"),
			Model:         record.GetString("model"),
			SerialNumber:  record.GetString("serial_number"),
			Problem:       record.GetString("problem"),
			Status:        record.GetString("status"),
			ReceivedDate:  record.GetString("received_date"),
			Notes:         record.GetString("notes"),
			StatusOptions: services.DeviceStatusOptions,
			StatusLabels:  services.DeviceStatusLabels,
		}

		component := templates.DeviceFormPage(data, NavFor(e.Request, "devices"))
		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleDeviceUpdate returns a handler that saves edits to a device record,
// enforcing the forward-only status workflow.
func HandleDeviceUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Form okunamadı")
		}

		record, err := app.FindRecordById("devices", id)
		if err != nil {
			log.Printf("device_update: could not find device %s: %v", id, err)
			return ErrorToast(e, http.StatusNotFound, "Cihaz bulunamadı")
		}

		data := parseDeviceForm(e)
		data.DeviceID = record.Id

		errs := validateDeviceForm(data)

		currentStatus := record.GetString("status")
		if data.Status != "" && !isValidDeviceTransition(currentStatus, data.Status) {
			cur := services.DeviceStatusLabels[currentStatus]
			next := services.DeviceStatusLabels[data.Status]
			errs["status"] = fmt.Sprintf("%s durumundan %s durumuna geçilemez", cur, next)
		}

		if len(errs) > 0 {
			data.Errors = errs
			SetToast(e, "warning", "Lütfen hataları düzeltin")
			component := templates.DeviceFormPage(data, NavFor(e.Request, "devices"))
			return component.Render(e.Request.Context(), e.Response)
		}

		record.Set("customer_name", data.CustomerName)
		record.Set("customer_phone", data.Phone)
		record.Set("brand", data.Brand)
		record.Set("model", data.Model)
		record.Set("serial_number", data.SerialNumber)
		record.Set("problem", data.Problem)
		record.Set("received_date", data.ReceivedDate)
		record.Set("notes", data.Notes)
		if data.Status != "" {
			record.Set("status", data.Status)
		}

		if err := app.Save(record); err != nil {
			log.Printf("device_update: could not save device %s: %v", id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Cihaz güncellenemedi")
		}

		SetToast(e, "success", "Cihaz kaydı güncellendi")
		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/panel/cihazlar")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/panel/cihazlar")
	}
}
