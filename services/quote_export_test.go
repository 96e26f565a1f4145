package services

import (
	"bytes"
	"strings"
	"testing"
)

func exportTestQuote() *Quote {
	return &Quote{
		QuoteNumber: "TKF-QT-26-0003",
		CompanyName: "Yılmaz Ofis Sistemleri",
		City:        "İstanbul",
		Phone:       "05321234567",
		QuoteDate:   "2026-02-14",
		DollarRate:  40,
		EuroRate:    50,
		Items: []LineItem{
			{ID: 1, Description: "SSD 1TB", Qty: 2, UnitPrice: 100, Currency: CurrencyTRY, ProfitPercent: 20, KDVPercent: 20},
			{ID: 2, Description: "Teknik servis", Qty: 1, UnitPrice: 10, Currency: CurrencyUSD, ProfitPercent: 0, KDVPercent: 20},
		},
		PrintCurrency: CurrencyTRY,
	}
}

func TestBuildQuoteExportData(t *testing.T) {
	q := exportTestQuote()

	data := BuildQuoteExportData(q)

	if data.QuoteNumber != "TKF-QT-26-0003" {
		t.Errorf("QuoteNumber = %q", data.QuoteNumber)
	}
	if len(data.Rows) != 2 {
		t.Fatalf("row count = %d, want 2", len(data.Rows))
	}

	// line 1: 100 TL + 20% margin, qty 2
	if data.Rows[0].No != 1 {
		t.Errorf("first row No = %d, want 1", data.Rows[0].No)
	}
	if data.Rows[0].UnitPrice != "120,00 ₺" {
		t.Errorf("first row UnitPrice = %q, want \"120,00 ₺\"", data.Rows[0].UnitPrice)
	}
	if data.Rows[0].LineTotal != "240,00 ₺" {
		t.Errorf("first row LineTotal = %q, want \"240,00 ₺\"", data.Rows[0].LineTotal)
	}

	// line 2: $10 at rate 40, no margin
	if data.Rows[1].LineTotal != "400,00 ₺" {
		t.Errorf("second row LineTotal = %q, want \"400,00 ₺\"", data.Rows[1].LineTotal)
	}

	// subtotal 640, KDV 20% = 128, grand 768
	if data.Subtotal != "640,00 ₺" {
		t.Errorf("Subtotal = %q, want \"640,00 ₺\"", data.Subtotal)
	}
	if data.KDVPercent != "%20" {
		t.Errorf("KDVPercent = %q, want \"%%20\"", data.KDVPercent)
	}
	if data.KDV != "128,00 ₺" {
		t.Errorf("KDV = %q, want \"128,00 ₺\"", data.KDV)
	}
	if data.GrandTotal != "768,00 ₺" {
		t.Errorf("GrandTotal = %q, want \"768,00 ₺\"", data.GrandTotal)
	}
}

func TestBuildQuoteExportDataPrintCurrency(t *testing.T) {
	q := exportTestQuote()
	q.PrintCurrency = CurrencyUSD

	data := BuildQuoteExportData(q)

	if data.Currency != CurrencyUSD {
		t.Errorf("Currency = %q, want USD", data.Currency)
	}
	// subtotal 640 TL at rate 40 → $16.00
	if data.Subtotal != "$16.00" {
		t.Errorf("Subtotal = %q, want \"$16.00\"", data.Subtotal)
	}
	// grand total 768 TL → $19.20
	if data.GrandTotal != "$19.20" {
		t.Errorf("GrandTotal = %q, want \"$19.20\"", data.GrandTotal)
	}
}

func TestGenerateQuotePDF(t *testing.T) {
	data := BuildQuoteExportData(exportTestQuote())

	pdfBytes, err := GenerateQuotePDF(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pdfBytes) == 0 {
		t.Fatal("generated PDF is empty")
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF: %q", pdfBytes[:8])
	}
}

func TestGenerateQuoteExcel(t *testing.T) {
	data := BuildQuoteExportData(exportTestQuote())

	xlsxBytes, err := GenerateQuoteExcel(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(xlsxBytes) == 0 {
		t.Fatal("generated workbook is empty")
	}
	// xlsx files are zip archives
	if !bytes.HasPrefix(xlsxBytes, []byte("PK")) {
		t.Errorf("output does not look like an xlsx archive: %q", xlsxBytes[:4])
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		in     string
		expect string
	}{
		{"SSD 1TB", "SSD 1TB"},
		{"=SUM(A1:A9)", "'=SUM(A1:A9)"},
		{"+1", "'+1"},
		{"-1", "'-1"},
		{"@cmd", "'@cmd"},
	}

	for _, tt := range tests {
		if got := sanitizeExcelCell(tt.in); got != tt.expect {
			t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.in, got, tt.expect)
		}
	}

	if got := sanitizeExcelCell(strings.Repeat("a", 10)); got != strings.Repeat("a", 10) {
		t.Errorf("plain text was altered: %q", got)
	}
}
