package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"teknofix/services"
	"teknofix/templates"
)

// HandleServiceCallList returns a handler that renders the on-site service
// call list, newest first.
func HandleServiceCallList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("service_calls", "id != ''", "-created", 0, 0)
		if err != nil {
			log.Printf("service_call_list: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Servis çağrıları yüklenemedi")
		}

		rows := make([]templates.ServiceCallRow, 0, len(records))
		for _, r := range records {
			s := r.GetString("status")
			rows = append(rows, templates.ServiceCallRow{
				ID:           r.Id,
				CustomerName: r.GetString("customer_name"),
				CallDate:     r.GetString("call_date"),
				Technician:   r.GetString("technician"),
				Problem:      r.GetString("problem"),
				Status:       s,
				StatusLabel:  services.ServiceCallStatusLabels[s],
				Signed:       services.HasSignature(r.GetString("signature")),
			})
		}

		data := templates.ServiceCallListData{Calls: rows}
		component := templates.ServiceCallListPage(data, NavFor(e.Request, "service"))
		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return component.Render(e.Request.Context(), e.Response)
	}
}
