package pipeline

import (
	"log/slog"
	"math"

	"gonum.org/v1/gonum/stat"

	"optcli/internal/dates"
	"optcli/internal/pricing"
	"optcli/internal/quotes"
)

// Params are the run constants: one instrument, one expiration, one solver
// setup per run.
type Params struct {
	NominalRate    float64 // nominal annual risk-free rate
	Strike         float64
	ExpirationDate string // DD/MM/YYYY
	Solver         pricing.SolverParams
}

// DefaultParams reproduces the reference October run: a 100% nominal rate,
// strike 1033, expiring 20/10/2023.
func DefaultParams() Params {
	return Params{
		NominalRate:    1.0,
		Strike:         1033,
		ExpirationDate: "20/10/2023",
		Solver: pricing.SolverParams{
			Low:       0.00001,
			High:      5,
			Tolerance: 0.00001,
			MaxIter:   500,
		},
	}
}

// ContinuousRate converts the nominal annual rate to its
// continuously-compounded equivalent, ln(1+r).
func (p Params) ContinuousRate() float64 {
	return math.Log(1 + p.NominalRate)
}

// Run repairs gaps in the quote sequence and derives one Record per quote,
// in input order. Field-level failures (unparseable numbers, bad dates,
// solver misses) leave the affected derived fields absent; nothing here
// aborts the run.
func Run(raw []quotes.RawQuote, p Params, logger *slog.Logger) []Record {
	filled, fills := quotes.FillGaps(raw)
	logger.Info("gap filling complete",
		slog.Int("records", len(filled)),
		slog.Int("filled_values", fills.Total()),
		slog.Int("filled_bid", fills.Bid),
		slog.Int("filled_ask", fills.Ask),
		slog.Int("filled_under_bid", fills.UnderBid),
		slog.Int("filled_under_ask", fills.UnderAsk))

	rate := p.ContinuousRate()
	records := make([]Record, 0, len(filled))

	for i, q := range filled {
		rec := Record{
			Description:    q.Description,
			Strike:         p.Strike,
			Kind:           q.Kind,
			CreatedAt:      q.CreatedAt,
			ExpirationDate: p.ExpirationDate,
		}

		if q.CreatedAt != "" {
			years, err := dates.YearsBetween(q.CreatedAt, p.ExpirationDate)
			if err != nil {
				logger.Warn("unusable observation timestamp",
					slog.Int("row", i),
					slog.String("created_at", q.CreatedAt),
					slog.String("error", err.Error()))
			} else {
				rec.YearsToExpiry = Float(years)
			}
		}

		if bid, ok := quotes.ParseDecimal(q.Bid); ok {
			rec.Bid = Float(bid)
		}
		if ask, ok := quotes.ParseDecimal(q.Ask); ok {
			rec.Ask = Float(ask)
		}
		if rec.Bid.Valid && rec.Ask.Valid {
			rec.Price = Float((rec.Bid.Float64 + rec.Ask.Float64) / 2)
		}

		if ub, ok := quotes.ParseDecimal(q.UnderBid); ok {
			rec.UnderBid = Float(ub)
		}
		if ua, ok := quotes.ParseDecimal(q.UnderAsk); ok {
			rec.UnderAsk = Float(ua)
		}
		if rec.UnderBid.Valid && rec.UnderAsk.Valid {
			rec.UnderPrice = Float((rec.UnderBid.Float64 + rec.UnderAsk.Float64) / 2)
			vol, err := pricing.SpreadVolatility(rec.UnderBid.Float64, rec.UnderAsk.Float64)
			if err != nil {
				logger.Debug("underlying volatility unavailable",
					slog.Int("row", i),
					slog.String("error", err.Error()))
			} else {
				rec.UnderVol = Float(vol)
			}
		}

		if rec.UnderPrice.Valid {
			rec.Intrinsic = Float(rec.UnderPrice.Float64 - p.Strike)
			if rec.Price.Valid {
				rec.Extrinsic = Float(rec.Price.Float64 - rec.Intrinsic.Float64)
			}
		}

		if rec.YearsToExpiry.Valid && rec.YearsToExpiry.Float64 > 0 &&
			rec.Price.Valid && rec.Price.Float64 > 0 &&
			rec.UnderPrice.Valid && rec.UnderPrice.Float64 > 0 {
			iv, err := pricing.ImpliedVol(rec.UnderPrice.Float64, p.Strike,
				rec.YearsToExpiry.Float64, rate, rec.Price.Float64, p.Solver)
			if err != nil {
				logger.Debug("implied volatility unavailable",
					slog.Int("row", i),
					slog.String("error", err.Error()))
			} else {
				rec.ImpliedVol = Float(iv)
			}
		}

		records = append(records, rec)
	}

	logSummary(records, logger)
	return records
}

// logSummary reports distribution statistics of the derived volatilities
// for the run log.
func logSummary(records []Record, logger *slog.Logger) {
	var ivs, uvs []float64
	for _, r := range records {
		if r.ImpliedVol.Valid {
			ivs = append(ivs, r.ImpliedVol.Float64)
		}
		if r.UnderVol.Valid {
			uvs = append(uvs, r.UnderVol.Float64)
		}
	}

	attrs := []any{
		slog.Int("records", len(records)),
		slog.Int("implied_vol_count", len(ivs)),
		slog.Int("under_vol_count", len(uvs)),
	}
	if len(ivs) > 0 {
		attrs = append(attrs, slog.Float64("implied_vol_mean", stat.Mean(ivs, nil)))
	}
	if len(ivs) > 1 {
		attrs = append(attrs, slog.Float64("implied_vol_stddev", stat.StdDev(ivs, nil)))
	}
	if len(uvs) > 0 {
		attrs = append(attrs,
			slog.Float64("under_vol_mean", stat.Mean(uvs, nil)))
	}
	logger.Info("pipeline complete", attrs...)
}
