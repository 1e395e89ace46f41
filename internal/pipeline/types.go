package pipeline

import "strconv"

// NullFloat is a float64 that may be absent. Derived fields that could not
// be computed stay absent instead of carrying a sentinel that looks like a
// real price. Absent values serialize to an empty CSV cell.
type NullFloat struct {
	Float64 float64
	Valid   bool
}

// Float wraps a present value.
func Float(v float64) NullFloat {
	return NullFloat{Float64: v, Valid: true}
}

// MarshalCSV implements the gocsv field marshaller.
func (f NullFloat) MarshalCSV() (string, error) {
	if !f.Valid {
		return "", nil
	}
	return strconv.FormatFloat(f.Float64, 'f', -1, 64), nil
}

// UnmarshalCSV implements the gocsv field unmarshaller; an empty cell is
// absent.
func (f *NullFloat) UnmarshalCSV(s string) error {
	if s == "" {
		*f = NullFloat{}
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

// Record is the normalized per-observation output row, one per RawQuote,
// in input order.
type Record struct {
	Description   string    `csv:"Description"`
	Strike        float64   `csv:"Strike"`
	Kind          string    `csv:"Kind"`
	Bid           NullFloat `csv:"Bid"`
	Ask           NullFloat `csv:"Ask"`
	UnderBid      NullFloat `csv:"Under Bid"`
	UnderAsk      NullFloat `csv:"Under Ask"`
	CreatedAt     string    `csv:"Created At"`
	Price         NullFloat `csv:"Price"`
	Intrinsic     NullFloat `csv:"Valor intrinsico"`
	Extrinsic     NullFloat `csv:"Valor extrinsico"`
	UnderPrice    NullFloat `csv:"Under Price"`
	ImpliedVol    NullFloat `csv:"Implied volatility"`
	UnderVol      NullFloat `csv:"Under volatility"`
	YearsToExpiry NullFloat `csv:"Years to expiration"`

	// ExpirationDate echoes the run constant; it is not part of the
	// report layout.
	ExpirationDate string `csv:"-"`
}
