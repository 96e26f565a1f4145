package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"
)

// ErrCompanyNameRequired is returned when a quote is saved without the one
// mandatory contact field.
var ErrCompanyNameRequired = errors.New("company name is required")

// Quote is the aggregate quotation document: contact metadata, the ordered
// line items exactly as entered, the two rates fixed at save time, and the
// persisted aggregates. Stored aggregates exist so a list view can show
// totals without recomputing; recomputing from Items and the stored rates
// must reproduce them.
type Quote struct {
	ID          string
	QuoteNumber string

	CompanyName string
	City        string
	Phone       string
	QuoteDate   string // "2006-01-02"

	DollarRate float64
	EuroRate   float64

	Items         []LineItem
	PrintCurrency Currency

	TotalAmount  float64 // quote subtotal
	TotalKDV     float64 // KDV on the quote subtotal
	GrandTotal   float64 // subtotal + KDV
	ProfitAmount float64 // profit subtotal + profit KDV
}

// Rates returns the quote's fixed exchange rates as a rate table.
func (q *Quote) Rates() Rates {
	return Rates{USD: q.DollarRate, EUR: q.EuroRate}
}

// ApplyTotals copies the persisted aggregate fields from computed totals.
func (q *Quote) ApplyTotals(t QuoteTotals) {
	q.TotalAmount = t.QuoteSubtotal
	q.TotalKDV = t.QuoteKDV
	q.GrandTotal = t.GrandQuote
	q.ProfitAmount = t.GrandProfit
}

// QuoteStore persists quotation documents. Each quote is one record with its
// line items embedded as an ordered JSON array; save and update are
// all-or-nothing at the backend. The pricing engine never touches storage.
type QuoteStore interface {
	Save(q *Quote) error
	Update(q *Quote) error
	Delete(id string) error
	Get(id string) (*Quote, error)
	List() ([]*Quote, error)
}

// PBQuoteStore is the PocketBase-backed QuoteStore.
type PBQuoteStore struct {
	app *pocketbase.PocketBase
}

// NewQuoteStore returns a QuoteStore over the given PocketBase app.
func NewQuoteStore(app *pocketbase.PocketBase) *PBQuoteStore {
	return &PBQuoteStore{app: app}
}

// Save inserts a new quote record, assigning its ID and quote number.
func (s *PBQuoteStore) Save(q *Quote) error {
	if q.CompanyName == "" {
		return ErrCompanyNameRequired
	}

	col, err := s.app.FindCollectionByNameOrId("quotes")
	if err != nil {
		return fmt.Errorf("quotes collection: %w", err)
	}

	number, err := GenerateQuoteNumber(s.app, time.Now())
	if err != nil {
		return fmt.Errorf("generate quote number: %w", err)
	}

	record := core.NewRecord(col)
	if err := s.fillRecord(record, q); err != nil {
		return err
	}
	record.Set("quote_number", number)

	if err := s.app.Save(record); err != nil {
		return fmt.Errorf("save quote: %w", err)
	}

	q.ID = record.Id
	q.QuoteNumber = number
	return nil
}

// Update overwrites an existing quote record by its storage identity.
func (s *PBQuoteStore) Update(q *Quote) error {
	if q.CompanyName == "" {
		return ErrCompanyNameRequired
	}

	record, err := s.app.FindRecordById("quotes", q.ID)
	if err != nil {
		return fmt.Errorf("quote %s: %w", q.ID, err)
	}

	if err := s.fillRecord(record, q); err != nil {
		return err
	}

	if err := s.app.Save(record); err != nil {
		return fmt.Errorf("update quote %s: %w", q.ID, err)
	}

	q.QuoteNumber = record.GetString("quote_number")
	return nil
}

// Delete removes a quote record.
func (s *PBQuoteStore) Delete(id string) error {
	record, err := s.app.FindRecordById("quotes", id)
	if err != nil {
		return fmt.Errorf("quote %s: %w", id, err)
	}
	if err := s.app.Delete(record); err != nil {
		return fmt.Errorf("delete quote %s: %w", id, err)
	}
	return nil
}

// Get loads one quote, restoring the raw line items verbatim (including
// empty-description lines) and the stored rates.
func (s *PBQuoteStore) Get(id string) (*Quote, error) {
	record, err := s.app.FindRecordById("quotes", id)
	if err != nil {
		return nil, fmt.Errorf("quote %s: %w", id, err)
	}
	return recordToQuote(record)
}

// List returns all quotes, newest first.
func (s *PBQuoteStore) List() ([]*Quote, error) {
	records, err := s.app.FindRecordsByFilter("quotes", "id != ''", "-created", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}

	quotes := make([]*Quote, 0, len(records))
	for _, record := range records {
		q, err := recordToQuote(record)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

func (s *PBQuoteStore) fillRecord(record *core.Record, q *Quote) error {
	data, err := json.Marshal(q.Items)
	if err != nil {
		return fmt.Errorf("marshal line items: %w", err)
	}

	record.Set("company_name", q.CompanyName)
	record.Set("city", q.City)
	record.Set("phone", q.Phone)
	record.Set("quote_date", q.QuoteDate)
	record.Set("dollar_rate", q.DollarRate)
	record.Set("euro_rate", q.EuroRate)
	record.Set("items", types.JSONRaw(data))
	record.Set("total_amount", q.TotalAmount)
	record.Set("total_kdv", q.TotalKDV)
	record.Set("grand_total", q.GrandTotal)
	record.Set("profit_amount", q.ProfitAmount)
	record.Set("print_currency", string(q.PrintCurrency))
	return nil
}

func recordToQuote(record *core.Record) (*Quote, error) {
	q := &Quote{
		ID:            record.Id,
		QuoteNumber:   record.GetString("quote_number"),
		CompanyName:   record.GetString("company_name"),
		City:          record.GetString("city"),
		Phone:         record.GetString("phone"),
		QuoteDate:     record.GetString("quote_date"),
		DollarRate:    record.GetFloat("dollar_rate"),
		EuroRate:      record.GetFloat("euro_rate"),
		PrintCurrency: ParseCurrency(record.GetString("print_currency")),
		TotalAmount:   record.GetFloat("total_amount"),
		TotalKDV:      record.GetFloat("total_kdv"),
		GrandTotal:    record.GetFloat("grand_total"),
		ProfitAmount:  record.GetFloat("profit_amount"),
	}

	if err := record.UnmarshalJSONField("items", &q.Items); err != nil {
		return nil, fmt.Errorf("quote %s: decode line items: %w", record.Id, err)
	}
	return q, nil
}
