package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"teknofix/services"
)

// QuotePrintPage renders the print-optimized quote view. It consumes the same
// print-currency projection as the PDF and Excel exports, so all three
// surfaces always show identical figures.
func QuotePrintPage(data services.QuoteExportData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="tr">
<head>
<meta charset="utf-8">
<title>Teklif %s</title>
<link rel="stylesheet" href="/static/print.css">
</head>
<body class="print">
<header class="print-head">
<div>
<h1>TeknoFix Bilgisayar</h1>
<p>Bilgisayar ve Elektronik Tamir Servisi</p>
</div>
<div class="doc-meta">
<h2>FİYAT TEKLİFİ</h2>
<p>Teklif No: %s</p>
<p>Tarih: %s</p>
<p>Para Birimi: %s</p>
</div>
</header>
<section class="customer">
<h3>Firma</h3>
<p>%s</p>
<p>%s</p>
</section>
<table class="table">
<thead><tr><th>No</th><th>Malzeme / Hizmet</th><th>Adet</th><th>Birim Fiyat</th><th>Tutar</th></tr></thead>
<tbody>
`,
			esc(data.QuoteNumber), esc(data.QuoteNumber), esc(data.QuoteDate), data.Currency,
			esc(data.CompanyName),
			esc(joinParts(data.City, data.Phone))); err != nil {
			return err
		}

		for _, r := range data.Rows {
			if _, err := fmt.Fprintf(w, "<tr><td>%d</td><td>%s</td><td class=\"num\">%s</td><td class=\"num\">%s</td><td class=\"num\">%s</td></tr>\n",
				r.No, esc(r.Description), esc(r.Qty), esc(r.UnitPrice), esc(r.LineTotal)); err != nil {
				return err
			}
		}

		_, err := fmt.Fprintf(w, `</tbody>
</table>
<table class="totals">
<tr><td>Ara Toplam</td><td class="num">%s</td></tr>
<tr><td>KDV (%s)</td><td class="num">%s</td></tr>
<tr class="grand"><td>GENEL TOPLAM</td><td class="num">%s</td></tr>
</table>
<footer><p>Bu teklif 15 gün geçerlidir. Fiyatlara işçilik dahildir.</p></footer>
<script>if (new URLSearchParams(window.location.search).has("auto")) { window.print(); }</script>
</body>
</html>
`, esc(data.Subtotal), esc(data.KDVPercent), esc(data.KDV), esc(data.GrandTotal))
		return err
	})
}

func joinParts(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += " | "
		}
		out += p
	}
	return out
}
