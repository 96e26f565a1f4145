package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// HomePage is the public landing page.
func HomePage(nav NavData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="hero">
<h1>Bilgisayar ve Elektronik Tamir Servisi</h1>
<p>Notebook, masaüstü, yazıcı ve ağ cihazlarınız için hızlı ve garantili onarım.</p>
<a class="btn" href="/iletisim">Bize Ulaşın</a>
</section>
<section class="highlights">
<div><h3>Ücretsiz Arıza Tespiti</h3><p>Cihazınızı getirin, sorunu aynı gün bildirelim.</p></div>
<div><h3>Yerinde Servis</h3><p>Ofisinize teknisyen gönderiyoruz.</p></div>
<div><h3>Orijinal Parça</h3><p>Tüm değişen parçalar garantilidir.</p></div>
</section>
`)
		return err
	})
	return Layout("Ana Sayfa", nav, body)
}

// ServiceInfo is one entry on the public services page.
type ServiceInfo struct {
	Title       string
	Description string
}

// ServicesPage lists what the shop repairs.
func ServicesPage(nav NavData, services []ServiceInfo) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<h1>Hizmetlerimiz</h1>\n<div class=\"cards\">\n"); err != nil {
			return err
		}
		for _, s := range services {
			if _, err := fmt.Fprintf(w, "<div class=\"card\"><h3>%s</h3><p>%s</p></div>\n",
				esc(s.Title), esc(s.Description)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</div>\n")
		return err
	})
	return Layout("Hizmetler", nav, body)
}

// ProductRow is one product on the public products page.
type ProductRow struct {
	Name        string
	Description string
	Price       string // formatted TL
	InStock     bool
}

// ProductsPage lists the shop's products with formatted TL prices.
func ProductsPage(nav NavData, products []ProductRow) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<h1>Ürünler</h1>\n<table class=\"table\">\n<thead><tr><th>Ürün</th><th>Açıklama</th><th>Fiyat</th><th>Stok</th></tr></thead>\n<tbody>\n"); err != nil {
			return err
		}
		for _, p := range products {
			stock := "Stokta"
			if !p.InStock {
				stock = "Tükendi"
			}
			if _, err := fmt.Fprintf(w, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
				esc(p.Name), esc(p.Description), esc(p.Price), stock); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</tbody>\n</table>\n")
		return err
	})
	return Layout("Ürünler", nav, body)
}

// AboutPage is the public about page.
func AboutPage(nav NavData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<h1>Hakkımızda</h1>
<p>TeknoFix, 2009'dan beri kurumsal ve bireysel müşterilerine bilgisayar ve
elektronik onarım hizmeti veren bir teknik servistir. Cihaz kabulünden
teslimata kadar tüm süreci kayıt altında tutar, her onarım için yazılı fiyat
teklifi sunarız.</p>
`)
		return err
	})
	return Layout("Hakkımızda", nav, body)
}

// ContactData carries the contact form state.
type ContactData struct {
	Name      string
	Email     string
	Phone     string
	Message   string
	Submitted bool
	Errors    map[string]string
}

// ContactPage renders the contact form, re-populating values on a validation
// failure and showing a confirmation after a successful submit.
func ContactPage(nav NavData, data ContactData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<h1>İletişim</h1>\n"); err != nil {
			return err
		}
		if data.Submitted {
			_, err := io.WriteString(w, `<p class="success">Mesajınız alındı. En kısa sürede dönüş yapacağız.</p>`)
			return err
		}
		_, err := fmt.Fprintf(w, `<form method="post" action="/iletisim">
<label>Ad Soyad<input name="name" value="%s">%s</label>
<label>E-posta<input name="email" value="%s">%s</label>
<label>Telefon<input name="phone" value="%s">%s</label>
<label>Mesaj<textarea name="message">%s</textarea>%s</label>
<button type="submit">Gönder</button>
</form>
`,
			esc(data.Name), fieldError(data.Errors, "name"),
			esc(data.Email), fieldError(data.Errors, "email"),
			esc(data.Phone), fieldError(data.Errors, "phone"),
			esc(data.Message), fieldError(data.Errors, "message"))
		return err
	})
	return Layout("İletişim", nav, body)
}

// LoginData carries the login form state.
type LoginData struct {
	Email string
	Error string
}

// LoginPage renders the back-office login form.
func LoginPage(nav NavData, data LoginData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>Giriş</h1>
%s<form method="post" action="/giris">
<label>E-posta<input type="email" name="email" value="%s" required></label>
<label>Şifre<input type="password" name="password" required></label>
<button type="submit">Giriş Yap</button>
</form>
`, loginError(data.Error), esc(data.Email))
		return err
	})
	return Layout("Giriş", nav, body)
}

func loginError(msg string) string {
	if msg == "" {
		return ""
	}
	return `<p class="field-error">` + esc(msg) + "</p>\n"
}
