package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"teknofix/collections"
	"teknofix/handlers"
	"teknofix/services"
)

func main() {
	app := pocketbase.New()

	rates := services.NewFeedClient()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.BackfillQuoteNumbers(app); err != nil {
			log.Printf("Warning: quote number backfill failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Resolve the session cookie on every request
		se.Router.BindFunc(handlers.AuthMiddleware(app))

		// ── Public site ──────────────────────────────────────────
		se.Router.GET("/", handlers.HandleHome(app))
		se.Router.GET("/hizmetler", handlers.HandleServicesPage(app))
		se.Router.GET("/urunler", handlers.HandleProductsPage(app))
		se.Router.GET("/hakkimizda", handlers.HandleAboutPage(app))
		se.Router.GET("/iletisim", handlers.HandleContactPage(app))
		se.Router.POST("/iletisim", handlers.HandleContactSubmit(app))

		// ── Auth ─────────────────────────────────────────────────
		se.Router.GET("/giris", handlers.HandleLoginPage(app))
		se.Router.POST("/giris", handlers.HandleLogin(app))
		se.Router.GET("/cikis", handlers.HandleLogout(app))

		// ── Quotes ───────────────────────────────────────────────
		se.Router.GET("/panel/teklifler", handlers.RequireAuth(handlers.HandleQuoteList(app)))
		se.Router.GET("/panel/teklifler/yeni", handlers.RequireAuth(handlers.HandleQuoteCreate(app)))
		se.Router.POST("/panel/teklifler", handlers.RequireAuth(handlers.HandleQuoteSave(app)))
		se.Router.POST("/panel/teklifler/hesapla", handlers.RequireAuth(handlers.HandleQuoteRecompute(app)))
		se.Router.POST("/panel/teklifler/satir-ekle", handlers.RequireAuth(handlers.HandleQuoteAddLine(app)))
		se.Router.POST("/panel/teklifler/satir-sil", handlers.RequireAuth(handlers.HandleQuoteRemoveLine(app)))
		se.Router.POST("/panel/teklifler/kurlar", handlers.RequireAuth(handlers.HandleQuoteRatesRefresh(app, rates)))
		se.Router.GET("/panel/teklifler/{id}/yazdir", handlers.RequireAuth(handlers.HandleQuotePrint(app)))
		se.Router.GET("/panel/teklifler/{id}/pdf", handlers.RequireAuth(handlers.HandleQuotePDF(app)))
		se.Router.GET("/panel/teklifler/{id}/excel", handlers.RequireAuth(handlers.HandleQuoteExcel(app)))
		se.Router.POST("/panel/teklifler/{id}/kaydet", handlers.RequireAuth(handlers.HandleQuoteUpdate(app)))
		se.Router.GET("/panel/teklifler/{id}", handlers.RequireAuth(handlers.HandleQuoteEdit(app)))
		se.Router.DELETE("/panel/teklifler/{id}", handlers.RequireAuth(handlers.HandleQuoteDelete(app)))

		// ── Device repair tracking ───────────────────────────────
		se.Router.GET("/panel/cihazlar", handlers.RequireAuth(handlers.HandleDeviceList(app)))
		se.Router.GET("/panel/cihazlar/yeni", handlers.RequireAuth(handlers.HandleDeviceNew(app)))
		se.Router.POST("/panel/cihazlar", handlers.RequireAuth(handlers.HandleDeviceCreate(app)))
		se.Router.POST("/panel/cihazlar/{id}/kaydet", handlers.RequireAuth(handlers.HandleDeviceUpdate(app)))
		se.Router.GET("/panel/cihazlar/{id}", handlers.RequireAuth(handlers.HandleDeviceEdit(app)))
		se.Router.DELETE("/panel/cihazlar/{id}", handlers.RequireAuth(handlers.HandleDeviceDelete(app)))

		// ── On-site service calls ────────────────────────────────
		se.Router.GET("/panel/servis", handlers.RequireAuth(handlers.HandleServiceCallList(app)))
		se.Router.GET("/panel/servis/yeni", handlers.RequireAuth(handlers.HandleServiceCallNew(app)))
		se.Router.POST("/panel/servis", handlers.RequireAuth(handlers.HandleServiceCallCreate(app)))
		se.Router.POST("/panel/servis/{id}/kaydet", handlers.RequireAuth(handlers.HandleServiceCallUpdate(app)))
		se.Router.GET("/panel/servis/{id}", handlers.RequireAuth(handlers.HandleServiceCallEdit(app)))
		se.Router.DELETE("/panel/servis/{id}", handlers.RequireAuth(handlers.HandleServiceCallDelete(app)))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
