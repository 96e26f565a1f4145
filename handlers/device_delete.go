package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleDeviceDelete returns a handler that removes a device record.
func HandleDeviceDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		record, err := app.FindRecordById("devices", id)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Cihaz bulunamadı")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("device_delete: could not delete device %s: %v", id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Cihaz silinemedi")
		}

		SetToast(e, "success", "Cihaz kaydı silindi")
		if e.Request.Header.Get("HX-Request") == "true" {
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/panel/cihazlar")
	}
}
