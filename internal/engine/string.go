package engine

import "fmt"

// String renders a compact snapshot of the book's top of book and
// cumulative stats, for logging and debugging.
func (ob *OrderBook) String() string {
	bbidPx, bbidVol, hasBid := ob.Bbid()
	baskPx, baskVol, hasAsk := ob.Bask()

	bidStr := "none"
	if hasBid {
		bidStr = fmt.Sprintf("%.4f x %d", bbidPx, bbidVol)
	}
	askStr := "none"
	if hasAsk {
		askStr = fmt.Sprintf("%.4f x %d", baskPx, baskVol)
	}

	return fmt.Sprintf(
		"%s bid=[%s] ask=[%s] ntrds=%d cumvol=%d market_impact=%.3f",
		ob.Ticker, bidStr, askStr, ob.ntrds, ob.cumVol, ob.marketImpact,
	)
}
