package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"teknofix/services"
	"teknofix/templates"
)

var shopServices = []templates.ServiceInfo{
	{Title: "Notebook Onarımı", Description: "Anakart, ekran, klavye ve batarya değişimi; sıvı teması temizliği."},
	{Title: "Masaüstü Toplama ve Onarım", Description: "Parça seçimi, montaj, yükseltme ve performans sorunları."},
	{Title: "Veri Kurtarma", Description: "Disk ve SSD arızalarında veri kurtarma, yedekleme kurulumu."},
	{Title: "Ağ Kurulumu", Description: "Ofis ağı, kablolama, modem ve erişim noktası yapılandırması."},
	{Title: "Yazıcı Servisi", Description: "Lazer ve mürekkepli yazıcı bakımı, kartuş ve drum değişimi."},
	{Title: "Yerinde Destek", Description: "Anlaşmalı firmalara periyodik bakım ve çağrı üzerine teknisyen."},
}

// HandleHome returns a handler that renders the landing page.
func HandleHome(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		component := templates.HomePage(NavFor(e.Request, ""))
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleServicesPage returns a handler that renders the services page.
func HandleServicesPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		component := templates.ServicesPage(NavFor(e.Request, ""), shopServices)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleAboutPage returns a handler that renders the about page.
func HandleAboutPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		component := templates.AboutPage(NavFor(e.Request, ""))
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleProductsPage returns a handler that lists the shop's products.
func HandleProductsPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("products", "id != ''", "sort_order", 0, 0)
		if err != nil {
			log.Printf("products: could not list products: %v", err)
			records = nil
		}

		rows := make([]templates.ProductRow, 0, len(records))
		for _, r := range records {
			rows = append(rows, templates.ProductRow{
				Name:        r.GetString("name"),
				Description: r.GetString("description"),
				Price:       services.FormatMoney(r.GetFloat("price"), services.CurrencyTRY),
				InStock:     r.GetBool("in_stock"),
			})
		}

		component := templates.ProductsPage(NavFor(e.Request, ""), rows)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleContactPage returns a handler that renders the contact form.
func HandleContactPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.ContactData{Errors: make(map[string]string)}
		component := templates.ContactPage(NavFor(e.Request, ""), data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleContactSubmit returns a handler that validates and stores a contact
// message. Validation failures re-render the form with the submitted values.
func HandleContactSubmit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return e.String(http.StatusBadRequest, "Invalid form data")
		}

		data := templates.ContactData{
			Name:    strings.TrimSpace(e.Request.FormValue("name")),
			Email:   strings.TrimSpace(e.Request.FormValue("email")),
			Phone:   strings.TrimSpace(e.Request.FormValue("phone")),
			Message: strings.TrimSpace(e.Request.FormValue("message")),
			Errors:  make(map[string]string),
		}

		if data.Name == "" {
			data.Errors["name"] = "Ad Soyad zorunludur"
		}
		if data.Message == "" {
			data.Errors["message"] = "Mesaj zorunludur"
		}
		if !services.ValidateEmail(data.Email) {
			data.Errors["email"] = "Geçersiz e-posta adresi"
		}
		if !services.ValidatePhone(data.Phone) {
			data.Errors["phone"] = "Geçersiz telefon numarası"
		}

		if len(data.Errors) > 0 {
			component := templates.ContactPage(NavFor(e.Request, ""), data)
			return component.Render(e.Request.Context(), e.Response)
		}

		col, err := app.FindCollectionByNameOrId("contact_messages")
		if err != nil {
			log.Printf("contact: could not find contact_messages collection: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		record := core.NewRecord(col)
		record.Set("name", data.Name)
		record.Set("email", data.Email)
		record.Set("phone", data.Phone)
		record.Set("message", data.Message)

		if err := app.Save(record); err != nil {
			log.Printf("contact: could not save message: %v", err)
			data.Errors["message"] = "Mesaj gönderilemedi, lütfen tekrar deneyin"
			component := templates.ContactPage(NavFor(e.Request, ""), data)
			return component.Render(e.Request.Context(), e.Response)
		}

		data.Submitted = true
		component := templates.ContactPage(NavFor(e.Request, ""), data)
		return component.Render(e.Request.Context(), e.Response)
	}
}
