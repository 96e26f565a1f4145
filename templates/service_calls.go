package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ServiceCallRow is one service call on the list page.
type ServiceCallRow struct {
	ID           string
	CustomerName string
	CallDate     string
	Technician   string
	Problem      string
	Status       string
	StatusLabel  string
	Signed       bool
}

// ServiceCallListData feeds the service call list page.
type ServiceCallListData struct {
	Calls []ServiceCallRow
}

// ServiceCallListPage renders the service call list.
func ServiceCallListPage(data ServiceCallListData, nav NavData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="page-head">
<h1>Servis Çağrıları</h1>
<a class="btn" href="/panel/servis/yeni">Yeni Çağrı</a>
</div>
<table class="table">
<thead><tr><th>Müşteri</th><th>Tarih</th><th>Teknisyen</th><th>Arıza</th><th>Durum</th><th>İmza</th><th></th></tr></thead>
<tbody>
`); err != nil {
			return err
		}
		for _, c := range data.Calls {
			signed := "—"
			if c.Signed {
				signed = "✓"
			}
			if _, err := fmt.Fprintf(w, `<tr>
<td>%s</td><td>%s</td><td>%s</td><td>%s</td><td><span class="status status-%s">%s</span></td><td>%s</td>
<td>
<a href="/panel/servis/%s">Düzenle</a>
<button hx-delete="/panel/servis/%s" hx-confirm="Kayıt silinsin mi?" hx-target="closest tr" hx-swap="outerHTML">Sil</button>
</td>
</tr>
`, esc(c.CustomerName), esc(c.CallDate), esc(c.Technician), esc(c.Problem),
				c.Status, esc(c.StatusLabel), signed, c.ID, c.ID); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</tbody>\n</table>\n")
		return err
	})
	return Layout("Servis Çağrıları", nav, body)
}

// ServiceCallFormData feeds the service call form.
type ServiceCallFormData struct {
	CallID       string
	CustomerName string
	Address      string
	Phone        string
	CallDate     string
	Technician   string
	Problem      string
	WorkDone     string
	Status       string
	Signature    string // raw vector JSON, echoed into the hidden input

	Errors map[string]string
}

// ServiceCallFormPage renders the create/edit form with the signature pad.
// The pad itself is an external drawing widget; it serializes strokes into
// the hidden signature input as vector JSON.
func ServiceCallFormPage(data ServiceCallFormData, nav NavData) templ.Component {
	title := "Yeni Servis Çağrısı"
	action := "/panel/servis"
	if data.CallID != "" {
		title = "Servis Çağrısı"
		action = "/panel/servis/" + data.CallID + "/kaydet"
	}
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>%s</h1>
<form method="post" action="%s">
<div class="form-grid">
<label>Müşteri<input name="customer_name" value="%s">%s</label>
<label>Adres<input name="address" value="%s"></label>
<label>Telefon<input name="phone" value="%s">%s</label>
<label>Tarih<input type="date" name="call_date" value="%s"></label>
<label>Teknisyen<input name="technician" value="%s"></label>
</div>
<label>Arıza<textarea name="problem">%s</textarea>%s</label>
<label>Yapılan İşlem<textarea name="work_done">%s</textarea></label>
<label>Durum<select name="status">
<option value="open"%s>Açık</option>
<option value="completed"%s>Tamamlandı</option>
</select>%s</label>
<div class="signature-pad" data-target="signature">
<p>Müşteri İmzası</p>
<canvas width="400" height="150"></canvas>
</div>
<input type="hidden" name="signature" value="%s">%s
<button type="submit">Kaydet</button>
</form>
<script src="/static/signature-pad.js"></script>
`,
			title, action,
			esc(data.CustomerName), fieldError(data.Errors, "customer_name"),
			esc(data.Address),
			esc(data.Phone), fieldError(data.Errors, "phone"),
			esc(data.CallDate),
			esc(data.Technician),
			esc(data.Problem), fieldError(data.Errors, "problem"),
			esc(data.WorkDone),
			selected(data.Status, "open"), selected(data.Status, "completed"),
			fieldError(data.Errors, "status"),
			esc(data.Signature), fieldError(data.Errors, "signature"))
		return err
	})
	return Layout(title, nav, body)
}
