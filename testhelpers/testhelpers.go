// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"

	"teknofix/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestQuote creates a quote record with one line item and returns it.
func CreateTestQuote(t *testing.T, app *pocketbase.PocketBase, quoteNumber, companyName string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		t.Fatalf("failed to find quotes collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quote_number", quoteNumber)
	record.Set("company_name", companyName)
	record.Set("city", "İstanbul")
	record.Set("phone", "05321234567")
	record.Set("quote_date", "2026-01-15")
	record.Set("dollar_rate", 41.5)
	record.Set("euro_rate", 44.8)
	record.Set("items", types.JSONRaw(`[{"id":1,"description":"SSD 1TB","qty":1,"unit_price":2500,"currency":"TL","profit_percent":20,"kdv_percent":20}]`))
	record.Set("total_amount", 3000.0)
	record.Set("total_kdv", 600.0)
	record.Set("grand_total", 3600.0)
	record.Set("profit_amount", 600.0)
	record.Set("print_currency", "TL")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote: %v", err)
	}

	return record
}

// CreateTestDevice creates a device record in the given workflow status.
func CreateTestDevice(t *testing.T, app *pocketbase.PocketBase, customerName, status string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("devices")
	if err != nil {
		t.Fatalf("failed to find devices collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("customer_name", customerName)
	record.Set("customer_phone", "05329876543")
	record.Set("brand", "Lenovo")
	record.Set("model", "ThinkPad T14")
	record.Set("serial_number", "PF-TEST-001")
	record.Set("problem", "Açılmıyor")
	record.Set("status", status)
	record.Set("received_date", "2026-02-01")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test device: %v", err)
	}

	return record
}

// CreateTestServiceCall creates a service call record. Pass an empty
// signature for an unsigned call.
func CreateTestServiceCall(t *testing.T, app *pocketbase.PocketBase, customerName, status, signature string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("service_calls")
	if err != nil {
		t.Fatalf("failed to find service_calls collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("customer_name", customerName)
	record.Set("address", "Atatürk Cad. No:12")
	record.Set("phone", "05551112233")
	record.Set("call_date", "2026-02-10")
	record.Set("technician", "Mehmet")
	record.Set("problem", "Yazıcı kağıt sıkıştırıyor")
	record.Set("status", status)
	if signature != "" {
		record.Set("signature", types.JSONRaw(signature))
	}

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test service call: %v", err)
	}

	return record
}

// CreateTestProduct creates a product record for the public catalog.
func CreateTestProduct(t *testing.T, app *pocketbase.PocketBase, name string, price float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		t.Fatalf("failed to find products collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("description", "Test ürünü")
	record.Set("price", price)
	record.Set("in_stock", true)
	record.Set("sort_order", 1)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test product: %v", err)
	}

	return record
}

// CreateTestUser creates an auth record in the built-in users collection.
func CreateTestUser(t *testing.T, app *pocketbase.PocketBase, email, password string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		t.Fatalf("failed to find users collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("email", email)
	record.Set("password", password)
	record.Set("verified", true)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test user: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
