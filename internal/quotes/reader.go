package quotes

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// feed column layout:
// description;strike;kind;bid;ask;underlying_bid;underlying_ask;created_at
const feedFieldCount = 8

// ReadFeed parses the semicolon-delimited quote feed. The first line is a
// header and is skipped; lines with fewer than eight fields are silently
// dropped. Field contents are not validated here.
func ReadFeed(r io.Reader) ([]RawQuote, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read feed: %w", err)
	}

	var out []RawQuote
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) < feedFieldCount {
			continue
		}
		out = append(out, RawQuote{
			Description: row[0],
			Strike:      row[1],
			Kind:        row[2],
			Bid:         row[3],
			Ask:         row[4],
			UnderBid:    row[5],
			UnderAsk:    row[6],
			CreatedAt:   row[7],
		})
	}
	return out, nil
}

// ReadFeedFile opens path and reads it as a quote feed. A missing or
// unreadable file is the one fatal condition of a run.
func ReadFeedFile(path string) ([]RawQuote, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open feed file: %w", err)
	}
	defer f.Close()
	return ReadFeed(f)
}
