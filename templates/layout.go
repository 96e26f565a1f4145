// Package templates holds the server-rendered views. Components are built by
// hand as templ.ComponentFunc values and rendered by the handlers.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// NavData carries the header state shown on every back-office page.
type NavData struct {
	LoggedIn bool
	UserName string
	Active   string // nav item key: quotes, devices, service_calls
}

func esc(s string) string {
	return templ.EscapeString(s)
}

// Layout wraps a body component in the shared page chrome: head, nav, toast
// listener, htmx include.
func Layout(title string, nav NavData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="tr">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s | TeknoFix</title>
<script src="/static/htmx.min.js"></script>
<link rel="stylesheet" href="/static/style.css">
</head>
<body>
`, esc(title)); err != nil {
			return err
		}

		if err := navBar(nav).Render(ctx, w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<main class="container">`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</main>
<div id="toast" class="toast" hidden></div>
<script>
document.body.addEventListener("showToast", function (evt) {
  var t = document.getElementById("toast");
  t.textContent = evt.detail.message;
  t.className = "toast toast-" + evt.detail.type;
  t.hidden = false;
  setTimeout(function () { t.hidden = true; }, 4000);
});
</script>
</body>
</html>
`); err != nil {
			return err
		}
		return nil
	})
}

func navBar(nav NavData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<header class="nav">
<a class="brand" href="/">TeknoFix</a>
<nav>
<a href="/hizmetler">Hizmetler</a>
<a href="/urunler">Ürünler</a>
<a href="/hakkimizda">Hakkımızda</a>
<a href="/iletisim">İletişim</a>
`); err != nil {
			return err
		}

		if nav.LoggedIn {
			links := []struct {
				key, href, label string
			}{
				{"quotes", "/panel/teklifler", "Teklifler"},
				{"devices", "/panel/cihazlar", "Cihaz Takibi"},
				{"service_calls", "/panel/servis", "Servis Çağrıları"},
			}
			for _, l := range links {
				class := ""
				if nav.Active == l.key {
					class = ` class="active"`
				}
				if _, err := fmt.Fprintf(w, "<a%s href=%q>%s</a>\n", class, l.href, l.label); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, `<span class="user">%s</span>
<a href="/cikis">Çıkış</a>
`, esc(nav.UserName)); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<a href="/giris">Giriş</a>
`); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</nav>
</header>
`)
		return err
	})
}

// fieldError renders the inline error for a form field, if any.
func fieldError(errors map[string]string, field string) string {
	if msg, ok := errors[field]; ok {
		return `<span class="field-error">` + esc(msg) + `</span>`
	}
	return ""
}

// selected returns the selected attribute when the values match.
func selected(current, value string) string {
	if current == value {
		return " selected"
	}
	return ""
}
