package engine

import (
	"math"
	"time"
)

// Bbid and Bask report the current best bid/ask price and resting
// volume at that price. ok is false when that side of the book is
// empty.
func (ob *OrderBook) Bbid() (price float64, vol int64, ok bool) {
	if ob.Bids.Best == nil {
		return 0, 0, false
	}
	return ob.Bids.Best.Price, ob.Bids.Best.Vol(), true
}

func (ob *OrderBook) Bask() (price float64, vol int64, ok bool) {
	if ob.Asks.Best == nil {
		return 0, 0, false
	}
	return ob.Asks.Best.Price, ob.Asks.Best.Vol(), true
}

// LastPx returns the price of the most recent trade, and whether any
// trade has occurred yet.
func (ob *OrderBook) LastPx() (float64, bool) {
	return ob.lastPx, ob.hasLastPx
}

// MarketImpact returns the current signed market-impact accumulator.
func (ob *OrderBook) MarketImpact() float64 {
	return ob.marketImpact
}

// CumVol returns the cumulative traded volume across all trades.
func (ob *OrderBook) CumVol() int64 {
	return ob.cumVol
}

// MyCumVol returns the cumulative traded volume across the
// participant's own fills.
func (ob *OrderBook) MyCumVol() int64 {
	return ob.myCumVol
}

// MyCumVolSent returns the participant's outstanding volume sent to
// the market: total qty sent, less what has since been cancelled or
// downsized via Modify.
func (ob *OrderBook) MyCumVolSent() int64 {
	return ob.myCumVolSent
}

// NMyOrders returns the number of orders the participant has sent to
// this book.
func (ob *OrderBook) NMyOrders() int64 {
	return ob.nMyOrders
}

// VWAP is the volume-weighted average price across every trade so
// far, or NaN if none have occurred.
func (ob *OrderBook) VWAP() float64 {
	var num, den float64
	for i := int64(0); i < ob.ntrds; i++ {
		num += ob.trades.price[i] * float64(ob.trades.vol[i])
		den += float64(ob.trades.vol[i])
	}
	if den == 0 {
		return math.NaN()
	}
	return num / den
}

// MyVWAP is the volume-weighted average price across the participant's
// own fills, or NaN if it has none.
func (ob *OrderBook) MyVWAP() float64 {
	var num, den float64
	for i := int64(0); i < ob.myNtrds; i++ {
		num += ob.myTrades.price[i] * float64(ob.myTrades.vol[i])
		den += float64(ob.myTrades.vol[i])
	}
	if den == 0 {
		return math.NaN()
	}
	return num / den
}

// MyPOV is the participant's share of total traded volume: 0 until
// any trading has occurred, to avoid a division by zero.
func (ob *OrderBook) MyPOV() float64 {
	if ob.cumVol <= 0 {
		return 0
	}
	return float64(ob.myCumVol) / float64(ob.cumVol)
}

// TradesVol, TradesPx, and TradesTimestamps return copies of the
// durable all-trades columns up to the current cursor.
func (ob *OrderBook) TradesVol() []int64 { return append([]int64(nil), ob.trades.vol[:ob.ntrds]...) }
func (ob *OrderBook) TradesPx() []float64 {
	return append([]float64(nil), ob.trades.price[:ob.ntrds]...)
}
func (ob *OrderBook) TradesTimestamps() []time.Time {
	return append([]time.Time(nil), ob.trades.timestamp[:ob.ntrds]...)
}

// MyTradesVol, MyTradesPx, and MyTradesTimestamps are the participant-
// only counterparts.
func (ob *OrderBook) MyTradesVol() []int64 {
	return append([]int64(nil), ob.myTrades.vol[:ob.myNtrds]...)
}
func (ob *OrderBook) MyTradesPx() []float64 {
	return append([]float64(nil), ob.myTrades.price[:ob.myNtrds]...)
}
func (ob *OrderBook) MyTradesTimestamps() []time.Time {
	return append([]time.Time(nil), ob.myTrades.timestamp[:ob.myNtrds]...)
}

// nPxLevels bounds a requested depth by how many distinct price levels
// actually rest on a side, so a grid walk never searches past them.
func nPxLevels(requested, available int) int {
	if available < requested {
		return available
	}
	return requested
}

// TopBidPx and TopAskPx report the n best prices on each side,
// stepping along the tick grid rather than scanning the book (sparse
// relative to the grid). Slots beyond what the side actually holds are
// NaN.
func (ob *OrderBook) TopBidPx(n int) []float64 {
	out := nanSlice(n)
	if ob.Bids.Best == nil {
		return out
	}
	cur := ob.Bids.Best.Price
	out[0] = cur
	found := 1
	target := nPxLevels(n, ob.Bids.Len())
	for found < target {
		next, err := ob.band.Shift(cur, -1)
		if err != nil {
			break
		}
		cur = next
		if _, ok := ob.Bids.Get(cur); ok {
			out[found] = cur
			found++
		}
	}
	return out
}

func (ob *OrderBook) TopAskPx(n int) []float64 {
	out := nanSlice(n)
	if ob.Asks.Best == nil {
		return out
	}
	cur := ob.Asks.Best.Price
	out[0] = cur
	found := 1
	target := nPxLevels(n, ob.Asks.Len())
	for found < target {
		next, err := ob.band.Shift(cur, 1)
		if err != nil {
			break
		}
		cur = next
		if _, ok := ob.Asks.Get(cur); ok {
			out[found] = cur
			found++
		}
	}
	return out
}

// TopBids and TopAsks report the n best (price, volume) pairs on each
// side, NaN-padded past what the side actually holds.
func (ob *OrderBook) TopBids(n int) (prices, vols []float64) {
	prices, vols = nanSlice(n), nanSlice(n)
	if ob.Bids.Best == nil {
		return
	}
	cur := ob.Bids.Best.Price
	lvl, _ := ob.Bids.Get(cur)
	prices[0], vols[0] = cur, float64(lvl.Vol())
	found := 1
	target := nPxLevels(n, ob.Bids.Len())
	for found < target {
		next, err := ob.band.Shift(cur, -1)
		if err != nil {
			break
		}
		cur = next
		if l, ok := ob.Bids.Get(cur); ok {
			prices[found], vols[found] = cur, float64(l.Vol())
			found++
		}
	}
	return
}

func (ob *OrderBook) TopAsks(n int) (prices, vols []float64) {
	prices, vols = nanSlice(n), nanSlice(n)
	if ob.Asks.Best == nil {
		return
	}
	cur := ob.Asks.Best.Price
	lvl, _ := ob.Asks.Get(cur)
	prices[0], vols[0] = cur, float64(lvl.Vol())
	found := 1
	target := nPxLevels(n, ob.Asks.Len())
	for found < target {
		next, err := ob.band.Shift(cur, 1)
		if err != nil {
			break
		}
		cur = next
		if l, ok := ob.Asks.Get(cur); ok {
			prices[found], vols[found] = cur, float64(l.Vol())
			found++
		}
	}
	return
}

// TopBidsCumVol and TopAsksCumVol sum resting volume over the n best
// price levels on a side, returning the price of the nth level walked
// (NaN if the side is empty).
func (ob *OrderBook) TopBidsCumVol(n int) (vol int64, px float64) {
	if ob.Bids.Best == nil {
		return 0, math.NaN()
	}
	cur := ob.Bids.Best.Price
	lvl, _ := ob.Bids.Get(cur)
	vol = lvl.Vol()
	found := 1
	target := nPxLevels(n, ob.Bids.Len())
	for found < target {
		next, err := ob.band.Shift(cur, -1)
		if err != nil {
			break
		}
		cur = next
		if l, ok := ob.Bids.Get(cur); ok {
			vol += l.Vol()
			found++
		}
	}
	return vol, cur
}

func (ob *OrderBook) TopAsksCumVol(n int) (vol int64, px float64) {
	if ob.Asks.Best == nil {
		return 0, math.NaN()
	}
	cur := ob.Asks.Best.Price
	lvl, _ := ob.Asks.Get(cur)
	vol = lvl.Vol()
	found := 1
	target := nPxLevels(n, ob.Asks.Len())
	for found < target {
		next, err := ob.band.Shift(cur, 1)
		if err != nil {
			break
		}
		cur = next
		if l, ok := ob.Asks.Get(cur); ok {
			vol += l.Vol()
			found++
		}
	}
	return vol, cur
}

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
