package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
)

// BackfillQuoteNumbers assigns a sequence number to quote records saved
// before the human-readable numbering existed. Numbers continue from the
// highest already-assigned sequence, in record creation order.
func BackfillQuoteNumbers(app *pocketbase.PocketBase) error {
	records, err := app.FindRecordsByFilter("quotes", "id != ''", "created", 0, 0)
	if err != nil {
		return fmt.Errorf("backfill: could not list quotes: %w", err)
	}

	next := 1
	for _, r := range records {
		if r.GetString("quote_number") != "" {
			next++
		}
	}

	for _, r := range records {
		if r.GetString("quote_number") != "" {
			continue
		}
		created := r.GetDateTime("created").Time()
		r.Set("quote_number", fmt.Sprintf("TKF-QT-%02d-%04d", created.Year()%100, next))
		next++
		if err := app.Save(r); err != nil {
			return fmt.Errorf("backfill: could not update quote %s: %w", r.Id, err)
		}
	}
	return nil
}
