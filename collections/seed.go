package collections

import (
	"encoding/json"
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"
)

// ── Definition structs ───────────────────────────────────────────────────

type productDef struct {
	name        string
	description string
	price       float64
	inStock     bool
	sortOrder   int
}

type lineItemDef struct {
	id            int
	description   string
	qty           int
	unitPrice     float64
	currency      string
	profitPercent float64
	kdvPercent    float64
}

type quoteDef struct {
	quoteNumber string
	companyName string
	city        string
	phone       string
	quoteDate   string
	dollarRate  float64
	euroRate    float64
	printCur    string
	items       []lineItemDef
}

// Seed inserts demo products and one sample quote when the collections are
// empty. Running it twice is a no-op.
func Seed(app *pocketbase.PocketBase) error {
	if err := seedProducts(app); err != nil {
		return err
	}
	return seedQuotes(app)
}

func seedProducts(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		return fmt.Errorf("seed: could not find products collection: %w", err)
	}

	existing, _ := app.FindRecordsByFilter("products", "id != ''", "", 1, 0)
	if len(existing) > 0 {
		return nil
	}

	defs := []productDef{
		{name: "SSD 512GB SATA", description: "2.5\" SATA SSD, 5 yıl garanti", price: 1650, inStock: true, sortOrder: 1},
		{name: "Notebook RAM 8GB DDR4", description: "3200MHz SODIMM", price: 780, inStock: true, sortOrder: 2},
		{name: "Laptop Adaptörü 65W", description: "Universal, uç seti dahil", price: 450, inStock: true, sortOrder: 3},
		{name: "CMOS Pili", description: "CR2032", price: 30, inStock: true, sortOrder: 4},
		{name: "Termal Macun", description: "4g şırınga", price: 120, inStock: false, sortOrder: 5},
	}

	for _, d := range defs {
		r := core.NewRecord(col)
		r.Set("name", d.name)
		r.Set("description", d.description)
		r.Set("price", d.price)
		r.Set("in_stock", d.inStock)
		r.Set("sort_order", d.sortOrder)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: could not save product %q: %w", d.name, err)
		}
	}
	return nil
}

func seedQuotes(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		return fmt.Errorf("seed: could not find quotes collection: %w", err)
	}

	existing, _ := app.FindRecordsByFilter("quotes", "id != ''", "", 1, 0)
	if len(existing) > 0 {
		return nil
	}

	def := quoteDef{
		quoteNumber: "TKF-QT-26-0001",
		companyName: "Yılmaz Ofis Sistemleri",
		city:        "Ankara",
		phone:       "0312 555 12 34",
		quoteDate:   "2026-08-20",
		dollarRate:  41.5,
		euroRate:    44.8,
		printCur:    "TL",
		items: []lineItemDef{
			{id: 1, description: "SSD 512GB değişimi", qty: 3, unitPrice: 1650, currency: "TL", profitPercent: 25, kdvPercent: 20},
			{id: 2, description: "Ağ anahtarı 24 port", qty: 1, unitPrice: 180, currency: "USD", profitPercent: 15, kdvPercent: 20},
			{id: 3, description: "Yerinde kurulum", qty: 1, unitPrice: 2500, currency: "TL", profitPercent: 0, kdvPercent: 20},
		},
	}

	items := make([]map[string]any, 0, len(def.items))
	var costSubtotal, quoteSubtotal, kdvSum float64
	for _, it := range def.items {
		rate := 1.0
		switch it.currency {
		case "USD":
			rate = def.dollarRate
		case "EUR":
			rate = def.euroRate
		}
		unitCost := it.unitPrice * rate
		quoteUnit := unitCost + unitCost*it.profitPercent/100
		costSubtotal += unitCost * float64(it.qty)
		quoteSubtotal += quoteUnit * float64(it.qty)
		kdvSum += it.kdvPercent

		items = append(items, map[string]any{
			"id":             it.id,
			"description":    it.description,
			"qty":            it.qty,
			"unit_price":     it.unitPrice,
			"currency":       it.currency,
			"profit_percent": it.profitPercent,
			"kdv_percent":    it.kdvPercent,
		})
	}

	effectiveKDV := kdvSum / float64(len(def.items))
	quoteKDV := quoteSubtotal * effectiveKDV / 100
	costKDV := costSubtotal * effectiveKDV / 100

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("seed: could not marshal quote items: %w", err)
	}

	r := core.NewRecord(col)
	r.Set("quote_number", def.quoteNumber)
	r.Set("company_name", def.companyName)
	r.Set("city", def.city)
	r.Set("phone", def.phone)
	r.Set("quote_date", def.quoteDate)
	r.Set("dollar_rate", def.dollarRate)
	r.Set("euro_rate", def.euroRate)
	r.Set("items", types.JSONRaw(data))
	r.Set("total_amount", quoteSubtotal)
	r.Set("total_kdv", quoteKDV)
	r.Set("grand_total", quoteSubtotal+quoteKDV)
	r.Set("profit_amount", (quoteSubtotal-costSubtotal)+(quoteKDV-costKDV))
	r.Set("print_currency", def.printCur)

	if err := app.Save(r); err != nil {
		return fmt.Errorf("seed: could not save sample quote: %w", err)
	}
	return nil
}
