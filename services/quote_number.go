package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
)

// formatQuoteNumber constructs the quote number string from components.
func formatQuoteNumber(year int, sequence int) string {
	return fmt.Sprintf("TKF-QT-%02d-%04d", year%100, sequence)
}

// GenerateQuoteNumber creates the next human-readable quote number.
// Format: TKF-QT-{YY}-{sequence}, sequence restarting each calendar year.
// The sequence continues from the highest suffix already issued this year,
// so deleting a quote never frees its number for reuse. The number is
// assigned by the storage layer at save time, never by the pricing engine.
func GenerateQuoteNumber(app *pocketbase.PocketBase, now time.Time) (string, error) {
	prefix := fmt.Sprintf("TKF-QT-%02d-", now.Year()%100)

	existing, err := app.FindRecordsByFilter(
		"quotes",
		"quote_number ~ {:prefix}",
		"",
		0,
		0,
		map[string]any{"prefix": prefix + "%"},
	)
	if err != nil {
		// Collection missing or empty: start at 1
		existing = nil
	}

	maxSeq := 0
	for _, r := range existing {
		suffix := strings.TrimPrefix(r.GetString("quote_number"), prefix)
		if seq, err := strconv.Atoi(suffix); err == nil && seq > maxSeq {
			maxSeq = seq
		}
	}

	return formatQuoteNumber(now.Year(), maxSeq+1), nil
}
