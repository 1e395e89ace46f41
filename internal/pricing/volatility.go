package pricing

import (
	"errors"
	"math"
)

// ErrNonPositiveQuote reports a bid or ask at or below zero, for which the
// log-range estimator is undefined.
var ErrNonPositiveQuote = errors.New("bid and ask must be positive")

// Trading session constants for annualization: a 6.5-hour session is 390
// minutes, and roughly 256 days a year are tradable.
const (
	tradingMinutesPerDay = 390
	tradingDaysPerYear   = 256
)

// SpreadVolatility estimates the annualized volatility of the underlying
// from one bid/ask observation, treating the quoted spread as a high-low
// range (Parkinson-style). Both quotes must be strictly positive.
func SpreadVolatility(bid, ask float64) (float64, error) {
	if bid <= 0 || ask <= 0 {
		return 0, ErrNonPositiveQuote
	}
	d := math.Log(bid) - math.Log(ask)
	term1 := 0.5 * d * d
	term2 := (2*math.Ln2 - 1) * d * d
	return math.Sqrt(term1-term2) * math.Sqrt(tradingMinutesPerDay*tradingDaysPerYear), nil
}
