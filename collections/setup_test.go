package collections_test

import (
	"testing"

	"github.com/pocketbase/pocketbase/core"

	"teknofix/collections"
	"teknofix/testhelpers"
)

// expectedCollections is the full list of collections that Setup() must create.
var expectedCollections = []string{
	"quotes",
	"devices",
	"service_calls",
	"products",
	"contact_messages",
}

func TestSetup_AllCollectionsExist(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q not found after Setup(): %v", name, err)
			continue
		}
		if col.Name != name {
			t.Errorf("expected collection name %q, got %q", name, col.Name)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	ids := make(map[string]string)
	for _, name := range expectedCollections {
		col, _ := app.FindCollectionByNameOrId(name)
		ids[name] = col.Id
	}

	collections.Setup(app)

	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q missing after second Setup(): %v", name, err)
			continue
		}
		if col.Id != ids[name] {
			t.Errorf("collection %q id changed after second Setup(): %s -> %s", name, ids[name], col.Id)
		}
	}
}

func TestSetup_QuotesFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("quotes")

	fields := []string{
		"quote_number", "company_name", "city", "phone", "quote_date",
		"dollar_rate", "euro_rate", "items", "total_amount", "total_kdv",
		"grand_total", "profit_amount", "print_currency", "created", "updated",
	}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("quotes: missing field %q", f)
		}
	}

	curField := col.Fields.GetByName("print_currency")
	if sf, ok := curField.(*core.SelectField); ok {
		expected := map[string]bool{"TL": true, "USD": true, "EUR": true}
		for _, v := range sf.Values {
			if !expected[v] {
				t.Errorf("unexpected print_currency value: %q", v)
			}
			delete(expected, v)
		}
		for v := range expected {
			t.Errorf("missing print_currency value: %q", v)
		}
	} else {
		t.Error("print_currency field is not a SelectField")
	}

	if _, ok := col.Fields.GetByName("items").(*core.JSONField); !ok {
		t.Error("items field is not a JSONField")
	}
}

func TestSetup_DevicesFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("devices")

	fields := []string{
		"customer_name", "customer_phone", "brand", "model", "serial_number",
		"problem", "status", "received_date", "notes",
	}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("devices: missing field %q", f)
		}
	}

	statusField := col.Fields.GetByName("status")
	if sf, ok := statusField.(*core.SelectField); ok {
		expected := map[string]bool{
			"received": true, "diagnosing": true, "repairing": true,
			"ready": true, "delivered": true, "cancelled": true,
		}
		for _, v := range sf.Values {
			if !expected[v] {
				t.Errorf("unexpected device status value: %q", v)
			}
			delete(expected, v)
		}
		for v := range expected {
			t.Errorf("missing device status value: %q", v)
		}
	} else {
		t.Error("devices.status field is not a SelectField")
	}
}

func TestSetup_ServiceCallsFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("service_calls")

	fields := []string{
		"customer_name", "address", "phone", "call_date", "technician",
		"problem", "work_done", "status", "signature",
	}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("service_calls: missing field %q", f)
		}
	}

	if _, ok := col.Fields.GetByName("signature").(*core.JSONField); !ok {
		t.Error("signature field is not a JSONField")
	}
}

func TestSetup_ProductsFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("products")

	fields := []string{"name", "description", "price", "in_stock", "sort_order"}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("products: missing field %q", f)
		}
	}
}
