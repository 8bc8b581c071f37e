// Package ticksize holds the static liquidity-band table and the
// tick-grid price lookups that depend on it.
//
// Bands mirror the EU tick-size regime (see
// https://www.emissions-euets.com/tick-size-regime): tick size grows
// with price within a band, and the bands themselves are ordered by
// average daily trade count, from band1 (thin, coarse ticks) to band6
// (the most liquid, finest ticks). Loading this table from a
// configuration file is out of scope for this package; it is compiled
// in as a static default, the way the original implementation's
// TICKER_BANDS/AVG_TRANSACTS globals worked once its YAML loader is set
// aside.
package ticksize

import "github.com/rs/zerolog/log"

// DefaultBand is used for any ticker absent from Tickers.
const DefaultBand = "band6"

// segment is one (from, to) price range sharing a tick size.
type segment struct {
	from, to, tick float64
}

// Band is one liquidity band's tick schedule.
type Band struct {
	Name string

	// Prices is the sorted, ascending set of valid grid prices for
	// this band.
	Prices []float64

	// idxs is the reverse mapping price -> index into Prices.
	idxs map[float64]int

	// MaxTick is the coarsest tick in the schedule, used to
	// extrapolate above Prices[len(Prices)-1].
	MaxTick float64

	// AvgTrades is the average number of trades per session for a
	// ticker in this band; it sizes TradeLog's initial buffers.
	AvgTrades int
}

func newBand(name string, avgTrades int, segments []segment) *Band {
	var prices []float64
	maxTick := 0.0
	for _, seg := range segments {
		if seg.tick > maxTick {
			maxTick = seg.tick
		}
		for p := seg.from; p < seg.to-seg.tick/2; p += seg.tick {
			prices = append(prices, round(p, seg.tick))
		}
	}
	idxs := make(map[float64]int, len(prices))
	for i, p := range prices {
		idxs[p] = i
	}
	return &Band{
		Name:      name,
		Prices:    prices,
		idxs:      idxs,
		MaxTick:   maxTick,
		AvgTrades: avgTrades,
	}
}

// round snaps p to the nearest multiple of tick to avoid float64
// accumulation drift from repeated addition while building the grid.
func round(p, tick float64) float64 {
	if tick <= 0 {
		return p
	}
	scaled := p / tick
	return float64(int64(scaled+0.5)) * tick
}

// bands is the static liquidity-band table, least to most liquid.
var bands = map[string]*Band{
	"band1": newBand("band1", 100, []segment{
		{0.01, 1.00, 0.01},
		{1.00, 10.00, 0.05},
		{10.00, 100.00, 0.2},
		{100.00, 1000.00, 1.0},
	}),
	"band2": newBand("band2", 500, []segment{
		{0.01, 1.00, 0.005},
		{1.00, 10.00, 0.02},
		{10.00, 100.00, 0.1},
		{100.00, 1000.00, 0.5},
	}),
	"band3": newBand("band3", 2000, []segment{
		{0.01, 1.00, 0.002},
		{1.00, 10.00, 0.01},
		{10.00, 100.00, 0.05},
		{100.00, 1000.00, 0.2},
	}),
	"band4": newBand("band4", 8000, []segment{
		{0.01, 1.00, 0.001},
		{1.00, 10.00, 0.01},
		{10.00, 100.00, 0.02},
		{100.00, 1000.00, 0.1},
	}),
	"band5": newBand("band5", 30000, []segment{
		{0.01, 1.00, 0.001},
		{1.00, 5.00, 0.005},
		{5.00, 50.00, 0.01},
		{50.00, 500.00, 0.05},
		{500.00, 2000.00, 0.2},
	}),
	"band6": newBand("band6", 120000, []segment{
		{0.01, 1.00, 0.001},
		{1.00, 5.00, 0.005},
		{5.00, 50.00, 0.01},
		{50.00, 500.00, 0.05},
		{500.00, 2000.00, 0.1},
	}),
}

// Tickers assigns known tickers to their liquidity band. A ticker
// absent from this table falls back to DefaultBand, with a warning —
// see Lookup.
var Tickers = map[string]string{
	"AAPL": "band6",
	"MSFT": "band6",
	"SPY":  "band6",
	"TSLA": "band5",
	"GOOG": "band5",
	"IBM":  "band4",
}

// Lookup resolves a ticker to its liquidity band, defaulting to the
// most liquid band with a logged warning when the ticker is unknown.
func Lookup(ticker string) *Band {
	name, ok := Tickers[ticker]
	if !ok {
		log.Warn().
			Str("ticker", ticker).
			Str("band", DefaultBand).
			Msg("ticker not found in liquidity bands table, defaulting to most liquid band")
		name = DefaultBand
	}
	return bands[name]
}
