package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"teknofix/testhelpers"
)

const testSignature = `[[{"x":10,"y":20},{"x":30,"y":40}]]`

func serviceCallForm() url.Values {
	return url.Values{
		"customer_name": {"Zeynep Arslan"},
		"address":       {"Cumhuriyet Mah. No:5"},
		"phone":         {"05551112233"},
		"call_date":     {"2026-02-10"},
		"technician":    {"Mehmet"},
		"problem":       {"Kasa fanı ses yapıyor"},
		"work_done":     {""},
		"status":        {"open"},
		"signature":     {""},
	}
}

func TestHandleServiceCallCreate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleServiceCallCreate(app)

	req := newHTMXFormRequest("/panel/servis", serviceCallForm())
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/panel/servis")

	records, err := app.FindRecordsByFilter("service_calls", "id != ''", "", 0, 0)
	if err != nil || len(records) != 1 {
		t.Fatalf("service call count = %d (err %v), want 1", len(records), err)
	}
	if got := records[0].GetString("status"); got != "open" {
		t.Errorf("status = %q, want open", got)
	}
}

func TestHandleServiceCallCompleteRequiresSignature(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleServiceCallCreate(app)

	form := serviceCallForm()
	form.Set("status", "completed")
	req := newHTMXFormRequest("/panel/servis", form)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	records, err := app.FindRecordsByFilter("service_calls", "id != ''", "", 0, 0)
	if err == nil && len(records) != 0 {
		t.Errorf("expected no service calls, got %d", len(records))
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "müşteri imzası gereklidir")
}

func TestHandleServiceCallCompleteWithSignature(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleServiceCallCreate(app)

	form := serviceCallForm()
	form.Set("status", "completed")
	form.Set("signature", testSignature)
	form.Set("work_done", "Fan değiştirildi")
	req := newHTMXFormRequest("/panel/servis", form)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	records, err := app.FindRecordsByFilter("service_calls", "id != ''", "", 0, 0)
	if err != nil || len(records) != 1 {
		t.Fatalf("service call count = %d (err %v), want 1", len(records), err)
	}
	if got := records[0].GetString("status"); got != "completed" {
		t.Errorf("status = %q, want completed", got)
	}
	if records[0].GetString("signature") == "" {
		t.Error("signature was not stored")
	}
}

func TestHandleServiceCallCreateRejectsBadSignature(t *testing.T) {
	tests := []struct {
		name      string
		signature string
	}{
		{"not json", "not json"},
		{"truncated stroke", `[[{"x":1,`},
		{"wrong shape", `{"x":1,"y":2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := testhelpers.NewTestApp(t)
			handler := HandleServiceCallCreate(app)

			form := serviceCallForm()
			form.Set("signature", tt.signature)
			req := newHTMXFormRequest("/panel/servis", form)
			rec := httptest.NewRecorder()

			if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}

			records, err := app.FindRecordsByFilter("service_calls", "id != ''", "", 0, 0)
			if err == nil && len(records) != 0 {
				t.Errorf("expected no service calls, got %d", len(records))
			}

			testhelpers.AssertHTMLContains(t, rec.Body.String(), "İmza okunamadı")
		})
	}
}

func TestHandleServiceCallUpdate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	call := testhelpers.CreateTestServiceCall(t, app, "Zeynep Arslan", "open", "")

	handler := HandleServiceCallUpdate(app)

	form := serviceCallForm()
	form.Set("status", "completed")
	form.Set("signature", testSignature)
	form.Set("work_done", "Toz temizliği yapıldı")
	req := newHTMXFormRequest("/panel/servis/"+call.Id+"/kaydet", form)
	req.SetPathValue("id", call.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	updated, err := app.FindRecordById("service_calls", call.Id)
	if err != nil {
		t.Fatalf("service call disappeared: %v", err)
	}
	if got := updated.GetString("status"); got != "completed" {
		t.Errorf("status = %q, want completed", got)
	}
	if got := updated.GetString("work_done"); got != "Toz temizliği yapıldı" {
		t.Errorf("work_done = %q", got)
	}
}

func TestHandleServiceCallList(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestServiceCall(t, app, "Zeynep Arslan", "open", "")
	testhelpers.CreateTestServiceCall(t, app, "Kemal Ünal", "completed", testSignature)

	handler := HandleServiceCallList(app)

	req := httptest.NewRequest(http.MethodGet, "/panel/servis", nil)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Zeynep Arslan", "Kemal Ünal", "Açık", "Tamamlandı", "✓")
}

func TestHandleServiceCallDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	call := testhelpers.CreateTestServiceCall(t, app, "Zeynep Arslan", "open", "")

	handler := HandleServiceCallDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/panel/servis/"+call.Id, nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", call.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if _, err := app.FindRecordById("service_calls", call.Id); err == nil {
		t.Error("expected service call to be deleted, but it still exists")
	}
}
