package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// QuoteListRow is one row on the quote list page, money already formatted.
type QuoteListRow struct {
	ID          string
	QuoteNumber string
	CompanyName string
	QuoteDate   string
	GrandTotal  string
}

// QuoteListData feeds the quote list page.
type QuoteListData struct {
	Quotes []QuoteListRow
}

// QuoteListPage renders the quote list, newest first.
func QuoteListPage(data QuoteListData, nav NavData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="page-head">
<h1>Teklifler</h1>
<a class="btn" href="/panel/teklifler/yeni">Yeni Teklif</a>
</div>
<table class="table">
<thead><tr><th>Teklif No</th><th>Firma</th><th>Tarih</th><th>Genel Toplam</th><th></th></tr></thead>
<tbody>
`); err != nil {
			return err
		}
		for _, q := range data.Quotes {
			if _, err := fmt.Fprintf(w, `<tr>
<td>%s</td><td>%s</td><td>%s</td><td class="num">%s</td>
<td>
<a href="/panel/teklifler/%s">Düzenle</a>
<a href="/panel/teklifler/%s/yazdir" target="_blank">Yazdır</a>
<button hx-delete="/panel/teklifler/%s" hx-confirm="Teklif silinsin mi?" hx-target="closest tr" hx-swap="outerHTML">Sil</button>
</td>
</tr>
`, esc(q.QuoteNumber), esc(q.CompanyName), esc(q.QuoteDate), esc(q.GrandTotal),
				q.ID, q.ID, q.ID); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</tbody>\n</table>\n")
		return err
	})
	return Layout("Teklifler", nav, body)
}

// QuoteLineRow is one editable line with its derived values formatted in the
// display currency.
type QuoteLineRow struct {
	ID            int
	No            int
	Description   string
	Qty           int
	UnitPrice     float64
	Currency      string
	ProfitPercent float64
	KDVPercent    float64

	UnitCost       string
	LineCost       string
	QuoteUnitPrice string
	QuoteLineTotal string
}

// QuoteEditorData feeds the quote editor page and its recompute partial.
type QuoteEditorData struct {
	QuoteID     string // empty for an unsaved quote
	QuoteNumber string

	CompanyName string
	City        string
	Phone       string
	QuoteDate   string

	DollarRate float64
	EuroRate   float64

	DisplayCurrency string
	PrintCurrency   string

	Lines []QuoteLineRow

	CostSubtotal   string
	QuoteSubtotal  string
	ProfitSubtotal string
	EffectiveKDV   string
	CostKDV        string
	QuoteKDV       string
	ProfitKDV      string
	GrandCost      string
	GrandProfit    string
	GrandQuote     string

	CurrencyOptions []string
	KDVOptions      []int
	ProfitOptions   []int

	Errors map[string]string
}

// QuoteEditorPage renders the full editor page.
func QuoteEditorPage(data QuoteEditorData, nav NavData) templ.Component {
	title := "Yeni Teklif"
	if data.QuoteID != "" {
		title = "Teklif " + data.QuoteNumber
	}
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<h1>%s</h1>\n", esc(title)); err != nil {
			return err
		}
		return QuoteEditorForm(data).Render(ctx, w)
	})
	return Layout(title, nav, body)
}

// QuoteEditorForm renders the editor form. It is also the HTMX swap target of
// every recompute, add-line, remove-line and rate-refresh action: each posts
// the whole form and receives this fragment back with fresh derived values.
func QuoteEditorForm(data QuoteEditorData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<form id="quote-form" hx-post="/panel/teklifler/hesapla" hx-target="#quote-form" hx-swap="outerHTML" hx-trigger="change from:find select, change from:find input">
<input type="hidden" name="quote_id" value="%s">
<div class="form-grid">
<label>Firma<input name="company_name" value="%s">%s</label>
<label>Şehir<input name="city" value="%s"></label>
<label>Telefon<input name="phone" value="%s">%s</label>
<label>Tarih<input type="date" name="quote_date" value="%s"></label>
</div>
<div class="form-grid rates">
<label>Dolar Kuru<input name="dollar_rate" value="%g"></label>
<label>Euro Kuru<input name="euro_rate" value="%g"></label>
<button type="button" hx-post="/panel/teklifler/kurlar" hx-include="#quote-form" hx-target="#quote-form" hx-swap="outerHTML">Kurları Güncelle</button>
<label>Ekran Para Birimi %s</label>
<label>Yazdırma Para Birimi %s</label>
</div>
`,
			data.QuoteID,
			esc(data.CompanyName), fieldError(data.Errors, "company_name"),
			esc(data.City),
			esc(data.Phone), fieldError(data.Errors, "phone"),
			esc(data.QuoteDate),
			data.DollarRate, data.EuroRate,
			currencySelect("display_currency", data.DisplayCurrency, data.CurrencyOptions),
			currencySelect("print_currency", data.PrintCurrency, data.CurrencyOptions)); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<table class="table items">
<thead><tr><th>No</th><th>Malzeme / Hizmet</th><th>Adet</th><th>Birim Fiyat</th><th>Para</th><th>Kâr %</th><th>KDV %</th><th>Maliyet</th><th>Toplam Maliyet</th><th>Teklif Birim</th><th>Teklif Toplam</th><th></th></tr></thead>
<tbody>
`); err != nil {
			return err
		}

		for i, line := range data.Lines {
			if _, err := fmt.Fprintf(w, `<tr>
<td>%d<input type="hidden" name="items[%d].id" value="%d"></td>
<td><input name="items[%d].description" value="%s"></td>
<td><input class="num" name="items[%d].qty" value="%d"></td>
<td><input class="num" name="items[%d].unit_price" value="%g"></td>
<td>%s</td>
<td><input class="num" name="items[%d].profit_percent" value="%g" list="profit-options"></td>
<td>%s</td>
<td class="num">%s</td>
<td class="num">%s</td>
<td class="num">%s</td>
<td class="num">%s</td>
<td><button type="button" hx-post="/panel/teklifler/satir-sil?id=%d" hx-include="#quote-form" hx-target="#quote-form" hx-swap="outerHTML">−</button></td>
</tr>
`,
				line.No, i, line.ID,
				i, esc(line.Description),
				i, line.Qty,
				i, line.UnitPrice,
				currencySelect(fmt.Sprintf("items[%d].currency", i), line.Currency, data.CurrencyOptions),
				i, line.ProfitPercent,
				kdvSelect(fmt.Sprintf("items[%d].kdv_percent", i), line.KDVPercent, data.KDVOptions),
				esc(line.UnitCost), esc(line.LineCost),
				esc(line.QuoteUnitPrice), esc(line.QuoteLineTotal),
				line.ID); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, `</tbody>
</table>
%s
<button type="button" hx-post="/panel/teklifler/satir-ekle" hx-include="#quote-form" hx-target="#quote-form" hx-swap="outerHTML">Satır Ekle</button>
<table class="totals">
<tr><td>Maliyet Ara Toplam</td><td class="num">%s</td><td>Teklif Ara Toplam</td><td class="num">%s</td><td>Kâr</td><td class="num">%s</td></tr>
<tr><td>Maliyet KDV (%s)</td><td class="num">%s</td><td>Teklif KDV</td><td class="num">%s</td><td>Kâr KDV</td><td class="num">%s</td></tr>
<tr class="grand"><td>Genel Maliyet</td><td class="num">%s</td><td>Genel Teklif</td><td class="num">%s</td><td>Genel Kâr</td><td class="num">%s</td></tr>
</table>
`,
			profitDatalist(data.ProfitOptions),
			esc(data.CostSubtotal), esc(data.QuoteSubtotal), esc(data.ProfitSubtotal),
			esc(data.EffectiveKDV), esc(data.CostKDV), esc(data.QuoteKDV), esc(data.ProfitKDV),
			esc(data.GrandCost), esc(data.GrandQuote), esc(data.GrandProfit)); err != nil {
			return err
		}

		saveLabel := "Kaydet"
		saveURL := "/panel/teklifler"
		if data.QuoteID != "" {
			saveLabel = "Güncelle"
			saveURL = "/panel/teklifler/" + data.QuoteID + "/kaydet"
		}
		if _, err := fmt.Fprintf(w, `<div class="actions">
<button hx-post="%s" hx-include="#quote-form" hx-disabled-elt="this">%s</button>
`, saveURL, saveLabel); err != nil {
			return err
		}
		if data.QuoteID != "" {
			if _, err := fmt.Fprintf(w, `<a class="btn" href="/panel/teklifler/%s/yazdir" target="_blank">Yazdır</a>
<a class="btn" href="/panel/teklifler/%s/pdf">PDF</a>
<a class="btn" href="/panel/teklifler/%s/excel">Excel</a>
`, data.QuoteID, data.QuoteID, data.QuoteID); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</div>\n</form>\n")
		return err
	})
}

func profitDatalist(options []int) string {
	out := `<datalist id="profit-options">`
	for _, opt := range options {
		out += fmt.Sprintf("<option value=\"%d\"></option>", opt)
	}
	return out + "</datalist>"
}

func currencySelect(name, current string, options []string) string {
	out := fmt.Sprintf("<select name=%q>", name)
	for _, opt := range options {
		out += fmt.Sprintf("<option value=%q%s>%s</option>", opt, selected(current, opt), opt)
	}
	return out + "</select>"
}

func kdvSelect(name string, current float64, options []int) string {
	out := fmt.Sprintf("<select name=%q>", name)
	seen := false
	for _, opt := range options {
		sel := ""
		if float64(opt) == current {
			sel = " selected"
			seen = true
		}
		out += fmt.Sprintf("<option value=\"%d\"%s>%d</option>", opt, sel, opt)
	}
	if !seen {
		out += fmt.Sprintf("<option value=\"%g\" selected>%g</option>", current, current)
	}
	return out + "</select>"
}
