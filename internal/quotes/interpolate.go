package quotes

import "strconv"

// FillStats counts how many values each FillGaps pass repaired, per field.
type FillStats struct {
	Bid      int
	Ask      int
	UnderBid int
	UnderAsk int
}

// Total returns the number of repaired values across all four fields.
func (s FillStats) Total() int {
	return s.Bid + s.Ask + s.UnderBid + s.UnderAsk
}

// FillGaps repairs missing quote values in a time-ordered sequence. Each of
// the four fields is processed independently in its own full pass:
//
//   - first record: nearest valid value scanning forward
//   - interior records: arithmetic mean of the nearest valid values behind
//     and ahead; left untouched when either side has none
//   - last record: nearest valid value scanning backward
//
// The input slice is not modified; a repaired copy is returned. A fill made
// earlier in a pass is visible to later interior scans of the same pass.
func FillGaps(in []RawQuote) ([]RawQuote, FillStats) {
	out := make([]RawQuote, len(in))
	copy(out, in)

	var stats FillStats
	stats.Bid = fillField(out,
		func(q *RawQuote) string { return q.Bid },
		func(q *RawQuote, v string) { q.Bid = v })
	stats.Ask = fillField(out,
		func(q *RawQuote) string { return q.Ask },
		func(q *RawQuote, v string) { q.Ask = v })
	stats.UnderBid = fillField(out,
		func(q *RawQuote) string { return q.UnderBid },
		func(q *RawQuote, v string) { q.UnderBid = v })
	stats.UnderAsk = fillField(out,
		func(q *RawQuote) string { return q.UnderAsk },
		func(q *RawQuote, v string) { q.UnderAsk = v })
	return out, stats
}

func fillField(qs []RawQuote, get func(*RawQuote) string, set func(*RawQuote, string)) int {
	n := len(qs)
	if n == 0 {
		return 0
	}
	filled := 0

	// First record: copy the first valid value found ahead.
	if _, ok := ParseDecimal(get(&qs[0])); !ok {
		for i := 1; i < n; i++ {
			if _, ok := ParseDecimal(get(&qs[i])); ok {
				set(&qs[0], get(&qs[i]))
				filled++
				break
			}
		}
	}

	// Interior records: midpoint of the nearest valid anchors on each side.
	for i := 1; i < n-1; i++ {
		if _, ok := ParseDecimal(get(&qs[i])); ok {
			continue
		}
		lower, lowerOK := nearestValid(qs, i-1, -1, get)
		upper, upperOK := nearestValid(qs, i+1, +1, get)
		if lowerOK && upperOK {
			set(&qs[i], formatFill((lower+upper)/2))
			filled++
		}
	}

	// Last record: copy the nearest valid value found behind.
	if n >= 2 {
		if _, ok := ParseDecimal(get(&qs[n-1])); !ok {
			for i := n - 2; i >= 0; i-- {
				if _, ok := ParseDecimal(get(&qs[i])); ok {
					set(&qs[n-1], get(&qs[i]))
					filled++
					break
				}
			}
		}
	}

	return filled
}

// nearestValid walks from start in the given direction until it finds a
// parseable value.
func nearestValid(qs []RawQuote, start, step int, get func(*RawQuote) string) (float64, bool) {
	for i := start; i >= 0 && i < len(qs); i += step {
		if v, ok := ParseDecimal(get(&qs[i])); ok {
			return v, true
		}
	}
	return 0, false
}

func formatFill(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
