package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleServiceCallDelete returns a handler that removes a service call.
func HandleServiceCallDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		record, err := app.FindRecordById("service_calls", id)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Servis çağrısı bulunamadı")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("service_call_delete: could not delete call %s: %v", id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Servis çağrısı silinemedi")
		}

		SetToast(e, "success", "Servis çağrısı silindi")
		if e.Request.Header.Get("HX-Request") == "true" {
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/panel/servis")
	}
}
