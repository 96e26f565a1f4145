package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"teknofix/services"
	"teknofix/templates"
)

// HandleDeviceList returns a handler that renders the repair tracking list,
// optionally filtered to one workflow status via the "durum" query param.
func HandleDeviceList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		filter := "id != ''"
		params := map[string]any{}

		status := e.Request.URL.Query().Get("durum")
		if status != "" {
			filter = "status = {:status}"
			params["status"] = status
		}

		records, err := app.FindRecordsByFilter("devices", filter, "-created", 0, 0, params)
		if err != nil {
			log.Printf("device_list: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Cihazlar yüklenemedi")
		}

		rows := make([]templates.DeviceRow, 0, len(records))
		for _, r := range records {
			s := r.GetString("status")
			rows = append(rows, templates.DeviceRow{
				ID:           r.Id,
				CustomerName: r.GetString("customer_name"),
				Brand:        r.GetString("brand"),
				Model:        r.GetString("model"),
				Problem:      r.GetString("problem"),
				Status:       s,
				StatusLabel:  services.DeviceStatusLabels[s],
				ReceivedDate: r.GetString("received_date"),
			})
		}

		data := templates.DeviceListData{Devices: rows, StatusFilter: status}
		component := templates.DeviceListPage(data, NavFor(e.Request, "devices"))
		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return component.Render(e.Request.Context(), e.Response)
	}
}
