package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// DeviceRow is one device on the intake list.
type DeviceRow struct {
	ID           string
	CustomerName string
	Brand        string
	Model        string
	Problem      string
	Status       string
	StatusLabel  string
	ReceivedDate string
}

// DeviceListData feeds the device intake list page.
type DeviceListData struct {
	Devices      []DeviceRow
	StatusFilter string
}

// DeviceListPage renders the repair-tracking list.
func DeviceListPage(data DeviceListData, nav NavData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="page-head">
<h1>Cihaz Takibi</h1>
<a class="btn" href="/panel/cihazlar/yeni">Cihaz Kabul</a>
</div>
<table class="table">
<thead><tr><th>Müşteri</th><th>Cihaz</th><th>Arıza</th><th>Durum</th><th>Kabul Tarihi</th><th></th></tr></thead>
<tbody>
`); err != nil {
			return err
		}
		for _, d := range data.Devices {
			if _, err := fmt.Fprintf(w, `<tr>
<td>%s</td><td>%s %s</td><td>%s</td><td><span class="status status-%s">%s</span></td><td>%s</td>
<td>
<a href="/panel/cihazlar/%s">Düzenle</a>
<button hx-delete="/panel/cihazlar/%s" hx-confirm="Kayıt silinsin mi?" hx-target="closest tr" hx-swap="outerHTML">Sil</button>
</td>
</tr>
`, esc(d.CustomerName), esc(d.Brand), esc(d.Model), esc(d.Problem),
				d.Status, esc(d.StatusLabel), esc(d.ReceivedDate), d.ID, d.ID); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</tbody>\n</table>\n")
		return err
	})
	return Layout("Cihaz Takibi", nav, body)
}

// DeviceFormData feeds the intake/edit form.
type DeviceFormData struct {
	DeviceID     string
	CustomerName string
	Phone        string
	Brand        string
	Model        string
	SerialNumber string
	Problem      string
	Status       string
	ReceivedDate string
	Notes        string

	StatusOptions []string
	StatusLabels  map[string]string
	Errors        map[string]string
}

// DeviceFormPage renders the device intake or edit form.
func DeviceFormPage(data DeviceFormData, nav NavData) templ.Component {
	title := "Cihaz Kabul"
	action := "/panel/cihazlar"
	if data.DeviceID != "" {
		title = "Cihaz Düzenle"
		action = "/panel/cihazlar/" + data.DeviceID + "/kaydet"
	}
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>
<form method="post" action="%s">
<div class="form-grid">
<label>Müşteri<input name="customer_name" value="%s">%s</label>
<label>Telefon<input name="customer_phone" value="%s">%s</label>
<label>Marka<input name="brand" value="%s">%s</label>
<label>Model<input name="model" value="%s"></label>
<label>Seri No<input name="serial_number" value="%s"></label>
<label>Kabul Tarihi<input type="date" name="received_date" value="%s"></label>
</div>
<label>Arıza<textarea name="problem">%s</textarea>%s</label>
<label>Notlar<textarea name="notes">%s</textarea></label>
`,
			title, action,
			esc(data.CustomerName), fieldError(data.Errors, "customer_name"),
			esc(data.Phone), fieldError(data.Errors, "customer_phone"),
			esc(data.Brand), fieldError(data.Errors, "brand"),
			esc(data.Model),
			esc(data.SerialNumber),
			esc(data.ReceivedDate),
			esc(data.Problem), fieldError(data.Errors, "problem"),
			esc(data.Notes)); err != nil {
			return err
		}

		if data.DeviceID != "" {
			if _, err := io.WriteString(w, "<label>Durum<select name=\"status\">"); err != nil {
				return err
			}
			for _, s := range data.StatusOptions {
				label := data.StatusLabels[s]
				if label == "" {
					label = s
				}
				if _, err := fmt.Fprintf(w, "<option value=%q%s>%s</option>", s, selected(data.Status, s), esc(label)); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</select>"+fieldError(data.Errors, "status")+"</label>\n"); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "<button type=\"submit\">Kaydet</button>\n</form>\n")
		return err
	})
	return Layout(title, nav, body)
}
