package pricing

import (
	"math"

	"github.com/chobie/go-gaussian"
)

var stdNormal = gaussian.NewGaussian(0, 1)

func d1(spot, strike, t, rate, vol float64) float64 {
	return (math.Log(spot/strike) + (rate+0.5*vol*vol)*t) / (vol * math.Sqrt(t))
}

// CallPrice returns the Black-Scholes price of a European call. Callers
// must ensure t > 0 and vol > 0; the closed form divides by vol*sqrt(t).
func CallPrice(spot, strike, t, rate, vol float64) float64 {
	td1 := d1(spot, strike, t, rate, vol)
	td2 := td1 - vol*math.Sqrt(t)
	return spot*stdNormal.Cdf(td1) - strike*math.Exp(-rate*t)*stdNormal.Cdf(td2)
}
