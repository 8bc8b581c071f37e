package engine

import "lobcore/internal/book"

// sweepBestPrice matches order against the resting head orders at the
// opposing best price level, popping filled heads and advancing
// through the level until either order is filled or the level itself
// empties. It accumulates the sweep's trades into the ephemeral
// staging buffers and folds the sweep's participant/historical
// aggressor volumes into the market-impact accumulator before
// returning.
func (ob *OrderBook) sweepBestPrice(order *book.Order) {
	var best *book.PriceLevel
	var oppositeHalf *book.HalfBook
	var aggEffectSide float64
	if order.IsBuy {
		best = ob.Asks.Best
		oppositeHalf = ob.Asks
		aggEffectSide = 1
	} else {
		best = ob.Bids.Best
		oppositeHalf = ob.Bids
		aggEffectSide = -1
	}

	initBestVol := best.Head.LeavesQty

	ob.lastTrades = newTradeLog(lowInc, lowInc)
	var nNewTrades, nMyNewTrades int
	var myAggVol, obAggVol int64
	var price float64

	for order.LeavesQty > 0 {
		head := best.Head
		trdQty := min64(head.LeavesQty, order.LeavesQty)
		head.LeavesQty -= trdQty
		order.LeavesQty -= trdQty

		price = best.Price
		pasUID := head.UID

		var myTrade bool
		var myUID int64
		switch {
		case head.UID < 0:
			myTrade = true
			myUID = head.UID
		case order.UID < 0:
			myTrade = true
			myAggVol += trdQty
			myUID = order.UID
		default:
			obAggVol += trdQty
		}

		ob.lastTrades.set(nNewTrades, price, trdQty, order.UID, pasUID, order.IsBuy, order.Timestamp)
		nNewTrades++

		if myTrade {
			if ob.myLastTrades == nil {
				ob.myLastTrades = newMyTradeLog(lowInc, lowInc)
				nMyNewTrades = 0
			}
			ob.myLastTrades.set(nMyNewTrades, price, trdQty, myUID, order.Timestamp)
			nMyNewTrades++
			ob.myCumVol += trdQty
			ob.myCumTurn += float64(trdQty) * price
		}

		ob.cumVol += trdQty
		ob.cumTurn += float64(trdQty) * price

		if head.LeavesQty == 0 {
			best.PopHead()
			if best.Head == nil {
				oppositeHalf.RemovePrice(best.Price)
				break
			}
		}
	}

	ob.ntrds = ob.trades.appendFrom(int(ob.ntrds), ob.lastTrades, nNewTrades)
	if nMyNewTrades > 0 {
		ob.myNtrds = ob.myTrades.appendFrom(int(ob.myNtrds), ob.myLastTrades, nMyNewTrades)
	}

	if myAggVol > 0 {
		aggEffect := float64(myAggVol) / float64(initBestVol)
		if aggEffect > 1 {
			aggEffect = 1
		}
		ob.marketImpact += aggEffect * aggEffectSide
	}
	if obAggVol > 0 && ob.correctsImpact(aggEffectSide) {
		aggEffect := float64(obAggVol) / float64(initBestVol)
		if aggEffect > 1 {
			aggEffect = 1
		}
		povF := 1 - float64(ob.myCumVol)/float64(ob.cumVol)
		ob.marketImpact += aggEffect * aggEffectSide * povF
	}

	ob.hasLastPx = true
	ob.lastPx = price
}

// correctsImpact reports whether a historical-only trade on this side
// pulls the accumulated market impact back toward zero, the only case
// in which it is allowed to move the accumulator further.
func (ob *OrderBook) correctsImpact(aggEffectSide float64) bool {
	if ob.marketImpact > 0 && aggEffectSide < 0 {
		return true
	}
	if ob.marketImpact < 0 && aggEffectSide > 0 {
		return true
	}
	return false
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
