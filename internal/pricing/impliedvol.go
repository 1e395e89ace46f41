package pricing

import (
	"errors"
	"math"
)

var (
	// ErrInvalidBracket reports a bisection bracket that cannot contain
	// the implied volatility: the bounds are inverted, or the market
	// price falls outside the call prices at the two bounds.
	ErrInvalidBracket = errors.New("bracket does not contain implied volatility")
	// ErrNoConvergence reports that the bisection hit its iteration
	// limit before the tolerance was met.
	ErrNoConvergence = errors.New("bisection did not converge")
)

// SolverParams bound the implied-volatility search.
type SolverParams struct {
	Low       float64 // lower volatility bound, must be positive
	High      float64 // upper volatility bound
	Tolerance float64 // price tolerance for early exit
	MaxIter   int     // iteration limit
}

// ImpliedVol finds the volatility at which the Black-Scholes call price
// matches marketPrice, by bisection over [p.Low, p.High]. The call price is
// monotonically increasing in volatility, so the bracket is checked up
// front: marketPrice must lie between the prices at the two bounds.
// Each iteration halves the bracket; a strict market > theoretical
// comparison raises the lower bound, so exact ties lower the upper bound.
func ImpliedVol(spot, strike, t, rate, marketPrice float64, p SolverParams) (float64, error) {
	low, high := p.Low, p.High
	if low >= high {
		return 0, ErrInvalidBracket
	}
	if marketPrice < CallPrice(spot, strike, t, rate, low) ||
		marketPrice > CallPrice(spot, strike, t, rate, high) {
		return 0, ErrInvalidBracket
	}

	for i := 0; i < p.MaxIter; i++ {
		mid := (low + high) / 2
		theo := CallPrice(spot, strike, t, rate, mid)
		if math.Abs(theo-marketPrice) < p.Tolerance {
			return mid, nil
		}
		if marketPrice > theo {
			low = mid
		} else {
			high = mid
		}
	}
	return 0, ErrNoConvergence
}
